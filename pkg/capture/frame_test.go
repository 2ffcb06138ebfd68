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
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glimt/screengrab/pkg/types"
)

func TestFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// top-left pixel red, bottom-right blue
	img.SetRGBA(0, 0, rgba(255, 0, 0))
	img.SetRGBA(1, 1, rgba(0, 0, 255))

	f := FromRGBA(img, types.ColorFormatBGRA, time.Second)
	require.EqualValues(t, 2, f.Width)
	require.EqualValues(t, 2, f.Height)
	require.Len(t, f.Data, 16)
	require.Equal(t, time.Second, f.PTS)

	// bgra: red pixel becomes [0 0 255 255]
	require.Equal(t, []byte{0, 0, 255, 255}, f.Data[0:4])
	// blue pixel becomes [255 0 0 255]
	require.Equal(t, []byte{255, 0, 0, 255}, f.Data[12:16])
}

func TestFromRGBAKeepsOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, rgba(1, 2, 3))

	f := FromRGBA(img, types.ColorFormatRGBA, 0)
	require.Equal(t, []byte{1, 2, 3, 255}, f.Data[0:4])
}

func TestFromRGBADropsStridePadding(t *testing.T) {
	// sub-image with a stride wider than the row
	base := image.NewRGBA(image.Rect(0, 0, 8, 4))
	base.SetRGBA(2, 1, rgba(9, 8, 7))
	img := base.SubImage(image.Rect(2, 1, 6, 3)).(*image.RGBA)

	f := FromRGBA(img, types.ColorFormatRGBA, 0)
	require.EqualValues(t, 4, f.Width)
	require.EqualValues(t, 2, f.Height)
	require.Len(t, f.Data, 32)
	require.Equal(t, []byte{9, 8, 7, 255}, f.Data[0:4])
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
