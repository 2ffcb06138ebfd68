// Copyright 2025 Glimt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package info

import (
	"time"
)

type Status string

const (
	StatusStarting     Status = "starting"
	StatusActive       Status = "active"
	StatusEnding       Status = "ending"
	StatusComplete     Status = "complete"
	StatusFailed       Status = "failed"
	StatusAborted      Status = "aborted"
	StatusLimitReached Status = "limit_reached"
)

const (
	EndReasonStopSignal   = "stop_signal"
	EndReasonTargetClosed = "target_closed"
	EndReasonError        = "error"
	EndReasonLimitReached = "limit_reached"

	MsgLimitReached         = "Session limit reached"
	MsgStoppedBeforeStarted = "Stop called before capture could start"
)

type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type RecordingInfo struct {
	Status    Status   `json:"status"`
	EndReason string   `json:"end_reason,omitempty"`
	Error     string   `json:"error,omitempty"`
	Details   string   `json:"details,omitempty"`
	StartedAt int64    `json:"started_at,omitempty"`
	EndedAt   int64    `json:"ended_at,omitempty"`
	UpdatedAt int64    `json:"updated_at,omitempty"`
	Duration  int64    `json:"duration,omitempty"`
	File      FileInfo `json:"file"`
}

func New(filename string) *RecordingInfo {
	return &RecordingInfo{
		Status:    StatusStarting,
		UpdatedAt: time.Now().UnixNano(),
		File: FileInfo{
			Filename: filename,
		},
	}
}

func (r *RecordingInfo) UpdateStatus(status Status) {
	r.Status = status
	r.UpdatedAt = time.Now().UnixNano()
}

func (r *RecordingInfo) SetStarted() {
	now := time.Now().UnixNano()
	r.Status = StatusActive
	r.StartedAt = now
	r.UpdatedAt = now
}

func (r *RecordingInfo) SetEndReason(reason string) {
	if r.EndReason == "" {
		r.EndReason = reason
	}
}

func (r *RecordingInfo) SetLimitReached() {
	now := time.Now().UnixNano()
	r.Status = StatusLimitReached
	r.Details = MsgLimitReached
	r.UpdatedAt = now
	r.EndedAt = now
}

func (r *RecordingInfo) SetAborted(msg string) {
	now := time.Now().UnixNano()
	r.Status = StatusAborted
	if r.Details == "" {
		r.Details = msg
	} else {
		r.Details = r.Details + "; " + msg
	}
	r.UpdatedAt = now
	r.EndedAt = now
}

func (r *RecordingInfo) SetFailed(err error) {
	now := time.Now().UnixNano()
	r.Status = StatusFailed
	r.UpdatedAt = now
	r.EndedAt = now
	r.Error = err.Error()
	r.SetEndReason(EndReasonError)
}

func (r *RecordingInfo) SetComplete() {
	now := time.Now().UnixNano()
	r.Status = StatusComplete
	r.UpdatedAt = now
	r.EndedAt = now
	if r.StartedAt != 0 {
		r.Duration = r.EndedAt - r.StartedAt
	}
}
