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

package capture

import (
	"image"
	"time"

	"github.com/frostbyte73/core"
	"github.com/livekit/protocol/logger"
	"github.com/vova616/screenshot"

	"github.com/glimt/screengrab/pkg/config"
	"github.com/glimt/screengrab/pkg/errors"
)

// X11Source grabs the primary display at a fixed framerate.
type X11Source struct {
	display   Display
	conf      *config.RecorderConfig
	callbacks *Callbacks

	started time.Time
	stopped core.Fuse
}

func NewX11Source(display Display, conf *config.RecorderConfig, callbacks *Callbacks) *X11Source {
	if conf.Capture.CaptureCursor || conf.Capture.DrawBorder {
		// x11 grabs don't composite the cursor or a border
		logger.Debugw("cursor capture and border drawing are ignored by the x11 backend")
	}

	return &X11Source{
		display:   display,
		conf:      conf,
		callbacks: callbacks,
	}
}

func (s *X11Source) Start() error {
	s.started = time.Now()

	// grab stays pinned to the dimensions the session was built with,
	// even if the display is resized mid-recording
	rect := image.Rect(0, 0, int(s.display.Width), int(s.display.Height))

	ticker := time.NewTicker(s.conf.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopped.Watch():
			return nil

		case <-ticker.C:
			img, err := screenshot.CaptureRect(rect)
			if err != nil {
				// the display connection is gone, treat as target closed
				logger.Warnw("screen grab failed", errors.ErrCaptureFailed(err))
				s.callbacks.OnClosed()
				return nil
			}

			frame := FromRGBA(img, s.conf.Capture.ColorFormat, time.Since(s.started))
			if err = s.callbacks.OnFrame(frame, s); err != nil {
				s.callbacks.OnError(err)
				return err
			}
		}
	}
}

// Stop implements Control, ending the loop after the current frame.
func (s *X11Source) Stop() {
	s.stopped.Break()
}

func (s *X11Source) Close() {
	s.stopped.Break()
}
