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

package config

import (
	"time"

	"github.com/livekit/protocol/logger"
	"gopkg.in/yaml.v3"

	"github.com/glimt/screengrab/pkg/errors"
	"github.com/glimt/screengrab/pkg/types"
)

type RecorderConfig struct {
	BaseConfig `yaml:",inline"`

	Capture CaptureConfig `yaml:"capture"`
	Output  FileConfig    `yaml:"output"`
}

type CaptureConfig struct {
	Framerate     int32             `yaml:"framerate"`      // frames per second
	CaptureCursor bool              `yaml:"capture_cursor"` // include the cursor in captured frames
	DrawBorder    bool              `yaml:"draw_border"`    // draw a border around the captured display
	ColorFormat   types.ColorFormat `yaml:"color_format"`   // raw frame pixel format
}

type FileConfig struct {
	Filename string        `yaml:"filename"`
	Width    int32         `yaml:"width"`  // scale output, defaults to display width
	Height   int32         `yaml:"height"` // scale output, defaults to display height
	Duration time.Duration `yaml:"duration"`
}

func NewRecorderConfig(confString string) (*RecorderConfig, error) {
	// start with defaults
	conf := &RecorderConfig{
		BaseConfig: BaseConfig{
			Logging:         &logger.Config{Level: "info"},
			FinalizeTimeout: time.Second * 10,
		},
		Capture: CaptureConfig{
			Framerate:     30,
			CaptureCursor: true,
			ColorFormat:   types.ColorFormatBGRA,
		},
		Output: FileConfig{
			Filename: "video.mp4",
			Duration: time.Second * 60,
		},
	}

	if confString != "" {
		if err := yaml.Unmarshal([]byte(confString), conf); err != nil {
			return nil, errors.ErrCouldNotParseConfig(err)
		}
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	if err := conf.initLogger("output", conf.Output.Filename); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *RecorderConfig) validate() error {
	if c.Capture.Framerate <= 0 {
		return errors.ErrInvalidInput("framerate")
	}
	if !c.Capture.ColorFormat.Valid() {
		return errors.ErrInvalidInput("color_format")
	}
	if c.Output.Filename == "" {
		return errors.ErrInvalidInput("filename")
	}
	if c.Output.Duration < 0 {
		return errors.ErrInvalidInput("duration")
	}
	if (c.Output.Width == 0) != (c.Output.Height == 0) {
		return errors.ErrInvalidInput("width and height must be set together")
	}
	// libx264 requires even dimensions for yuv420p output
	if c.Output.Width%2 != 0 || c.Output.Height%2 != 0 {
		return errors.ErrInvalidInput("output dimensions must be even")
	}
	if c.MaxDuration > 0 && c.Output.Duration > c.MaxDuration {
		return errors.ErrInvalidInput("duration exceeds max_duration")
	}
	if c.FinalizeTimeout <= 0 {
		return errors.ErrInvalidInput("finalize_timeout")
	}
	return nil
}

// FrameInterval is the expected delay between delivered frames.
func (c *RecorderConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Capture.Framerate)
}
