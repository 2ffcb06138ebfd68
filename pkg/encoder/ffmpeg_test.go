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

package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/config"
)

func TestBuildArgs(t *testing.T) {
	conf, err := config.NewRecorderConfig("")
	require.NoError(t, err)
	display := capture.Display{ID: "primary", Width: 1920, Height: 1080}

	args := strings.Join(buildArgs(conf, display), " ")

	require.Contains(t, args, "-f rawvideo -pix_fmt bgra -s 1920x1080 -r 30 -i pipe:0")
	require.Contains(t, args, "-an")
	require.Contains(t, args, "-c:v libx264")
	require.NotContains(t, args, "-vf")
	require.True(t, strings.HasSuffix(args, "-f mp4 video.mp4"))
}

func TestBuildArgsScaled(t *testing.T) {
	conf, err := config.NewRecorderConfig(`
output:
  width: 1280
  height: 720
`)
	require.NoError(t, err)
	display := capture.Display{ID: "primary", Width: 1920, Height: 1080}

	args := strings.Join(buildArgs(conf, display), " ")

	// input size stays at display resolution, scaling happens on output
	require.Contains(t, args, "-s 1920x1080")
	require.Contains(t, args, "-vf scale=1280:720")
}
