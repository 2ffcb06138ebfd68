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

package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/encoder"
	"github.com/glimt/screengrab/pkg/stats"
)

// FrameSink owns the encoder for the lifetime of a session. Frames are
// delivered sequentially on the capture thread, so no locking is needed
// beyond the state manager; the encoder is taken exactly once on
// finalize and never touched again.
type FrameSink struct {
	enc      encoder.Encoder // nil once taken
	stop     <-chan struct{}
	state    *StateManager
	monitor  *stats.Monitor
	progress io.Writer
	started  time.Time
}

func newFrameSink(
	enc encoder.Encoder,
	stop <-chan struct{},
	state *StateManager,
	monitor *stats.Monitor,
	progress io.Writer,
) *FrameSink {
	return &FrameSink{
		enc:      enc,
		stop:     stop,
		state:    state,
		monitor:  monitor,
		progress: progress,
		started:  time.Now(),
	}
}

func (s *FrameSink) HandleFrame(frame *capture.Frame, ctl capture.Control) error {
	if _, err := fmt.Fprintf(s.progress, "\rRecording for: %d seconds", int64(time.Since(s.started).Seconds())); err != nil {
		return err
	}

	start := time.Now()
	if err := s.enc.SendFrame(frame); err != nil {
		s.monitor.FrameDropped()
		return err
	}
	s.monitor.FrameCaptured()
	s.monitor.FrameEncoded(time.Since(start))

	// non-blocking poll, a value and a closed channel are equivalent
	select {
	case <-s.stop:
		if err := s.Finalize(); err != nil {
			return err
		}
		ctl.Stop()
		_, _ = fmt.Fprintln(s.progress)
	default:
	}

	return nil
}

// Finalize takes the encoder and flushes the output. Subsequent calls
// are no-ops.
func (s *FrameSink) Finalize() error {
	enc := s.enc
	if enc == nil {
		return nil
	}
	s.enc = nil

	s.state.UpgradeState(StateFinalizing)
	return enc.Finish()
}
