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
	"io"
	"os"
	"time"

	"github.com/frostbyte73/core"
	"github.com/linkdata/deadlock"
	"github.com/livekit/protocol/logger"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/config"
	"github.com/glimt/screengrab/pkg/encoder"
	"github.com/glimt/screengrab/pkg/info"
	"github.com/glimt/screengrab/pkg/stats"
)

// Controller runs a single capture session: one source, one sink, one
// output file. A finished controller is not reusable.
type Controller struct {
	conf       *config.RecorderConfig
	display    capture.Display
	src        capture.Source
	callbacks  *capture.Callbacks
	newEncoder encoder.Factory
	monitor    *stats.Monitor

	// Progress receives elapsed-time updates, one line overwritten in
	// place. Defaults to stdout.
	Progress io.Writer

	mu         deadlock.Mutex
	state      *StateManager
	sink       *FrameSink
	stopCh     chan struct{}
	stopSent   core.Fuse
	limitTimer *time.Timer

	Info *info.RecordingInfo
}

func New(
	conf *config.RecorderConfig,
	display capture.Display,
	src capture.Source,
	callbacks *capture.Callbacks,
	newEncoder encoder.Factory,
	monitor *stats.Monitor,
) *Controller {
	return &Controller{
		conf:       conf,
		display:    display,
		src:        src,
		callbacks:  callbacks,
		newEncoder: newEncoder,
		monitor:    monitor,
		Progress:   os.Stdout,
		state:      &StateManager{},
		stopCh:     make(chan struct{}, 1),
		Info:       info.New(conf.Output.Filename),
	}
}

// Run blocks on the calling thread until the session reaches a terminal
// state. Capture errors are recorded on the returned info, never
// panicked or escalated.
func (c *Controller) Run() *info.RecordingInfo {
	defer c.close()

	enc, err := c.newEncoder(c.conf, c.display)
	if err != nil {
		c.Info.SetFailed(err)
		return c.Info
	}
	c.sink = newFrameSink(enc, c.stopCh, c.state, c.monitor, c.Progress)
	c.callbacks.SetOnFrame(c.sink.HandleFrame)

	// ends the session independently of the stop signal
	c.callbacks.AddOnClosed(func() {
		c.SendStop(info.EndReasonTargetClosed)
	})

	c.startLimitTimer()

	c.state.UpgradeState(StateRecording)
	c.Info.SetStarted()
	c.monitor.RecordingStarted()
	logger.Infow("recording started",
		"display", c.display.ID,
		"width", c.display.Width,
		"height", c.display.Height,
		"output", c.conf.Output.Filename,
	)

	if err = c.src.Start(); err != nil {
		c.Info.SetFailed(err)
		// reap the encoder process, the output file state is undefined
		_ = c.sink.Finalize()
		return c.Info
	}

	// the loop can end before the sink observes the stop signal, e.g.
	// on target closure or a forced close; finalize here so the
	// container is always flushed
	if err = c.sink.Finalize(); err != nil {
		c.Info.SetFailed(err)
		return c.Info
	}

	return c.Info
}

// SendStop requests a cooperative stop. The first caller wins; the sink
// observes the signal at the next frame delivery.
func (c *Controller) SendStop(reason string) {
	c.stopSent.Once(func() {
		c.mu.Lock()
		if c.limitTimer != nil {
			c.limitTimer.Stop()
		}
		c.mu.Unlock()

		logger.Debugw("stopping session", "reason", reason)
		c.Info.SetEndReason(reason)
		if c.Info.Status == info.StatusActive && reason != info.EndReasonLimitReached {
			c.Info.UpdateStatus(info.StatusEnding)
		}

		// closing covers both the signaled and the dropped-sender case
		close(c.stopCh)
	})
}

func (c *Controller) StopSent() <-chan struct{} {
	return c.stopSent.Watch()
}

func (c *Controller) startLimitTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conf.MaxDuration <= 0 {
		return
	}
	c.limitTimer = time.AfterFunc(c.conf.MaxDuration, func() {
		c.Info.SetLimitReached()
		c.SendStop(info.EndReasonLimitReached)
	})
}

func (c *Controller) close() {
	c.monitor.RecordingEnded()
	c.state.UpgradeState(StateStopped)

	c.mu.Lock()
	if c.limitTimer != nil {
		c.limitTimer.Stop()
	}
	c.mu.Unlock()

	// ensure the session ends with a terminal status
	switch c.Info.Status {
	case info.StatusStarting:
		c.Info.SetAborted(info.MsgStoppedBeforeStarted)
	case info.StatusActive, info.StatusEnding:
		c.Info.SetComplete()
	}

	if stat, err := os.Stat(c.conf.Output.Filename); err == nil {
		c.Info.File.Size = stat.Size()
	}

	logger.Infow("session ended",
		"status", c.Info.Status,
		"reason", c.Info.EndReason,
		"state", c.state.GetState(),
	)
}
