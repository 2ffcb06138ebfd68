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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glimt/screengrab/pkg/types"
)

func TestDefaults(t *testing.T) {
	conf, err := NewRecorderConfig("")
	require.NoError(t, err)

	require.Equal(t, "video.mp4", conf.Output.Filename)
	require.Equal(t, time.Second*60, conf.Output.Duration)
	require.EqualValues(t, 30, conf.Capture.Framerate)
	require.True(t, conf.Capture.CaptureCursor)
	require.False(t, conf.Capture.DrawBorder)
	require.Equal(t, types.ColorFormatBGRA, conf.Capture.ColorFormat)
	require.Equal(t, time.Millisecond*100/3, conf.FrameInterval())
}

func TestConfigBody(t *testing.T) {
	conf, err := NewRecorderConfig(`
logging:
  level: debug
capture:
  framerate: 60
  capture_cursor: false
  color_format: rgba
output:
  filename: out.mp4
  width: 1280
  height: 720
  duration: 5s
session_limits:
  max_duration: 2m
`)
	require.NoError(t, err)

	require.Equal(t, "out.mp4", conf.Output.Filename)
	require.Equal(t, time.Second*5, conf.Output.Duration)
	require.EqualValues(t, 60, conf.Capture.Framerate)
	require.False(t, conf.Capture.CaptureCursor)
	require.Equal(t, types.ColorFormatRGBA, conf.Capture.ColorFormat)
	require.EqualValues(t, 1280, conf.Output.Width)
	require.Equal(t, time.Minute*2, conf.MaxDuration)
}

func TestValidation(t *testing.T) {
	for _, test := range []struct {
		name string
		body string
	}{
		{
			name: "bad yaml",
			body: "{{",
		},
		{
			name: "zero framerate",
			body: "capture:\n  framerate: 0",
		},
		{
			name: "unknown color format",
			body: "capture:\n  color_format: yuv420",
		},
		{
			name: "empty filename",
			body: "output:\n  filename: ''",
		},
		{
			name: "negative duration",
			body: "output:\n  duration: -1s",
		},
		{
			name: "width without height",
			body: "output:\n  width: 1280",
		},
		{
			name: "odd dimensions",
			body: "output:\n  width: 1281\n  height: 720",
		},
		{
			name: "duration above limit",
			body: "output:\n  duration: 5m\nsession_limits:\n  max_duration: 1m",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRecorderConfig(test.body)
			require.Error(t, err)
		})
	}
}
