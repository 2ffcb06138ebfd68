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

	"github.com/glimt/screengrab/pkg/types"
)

// Frame is one captured image buffer. Data is tightly packed in the
// frame's color format, 4 bytes per pixel.
type Frame struct {
	Data   []byte
	Width  int32
	Height int32
	Format types.ColorFormat
	PTS    time.Duration
}

// FromRGBA packs an image into a frame, dropping any row padding and
// reordering channels to match the requested format.
func FromRGBA(img *image.RGBA, format types.ColorFormat, pts time.Duration) *Frame {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	data := make([]byte, w*h*4)

	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(data[y*w*4:], img.Pix[off:off+w*4])
	}

	if format == types.ColorFormatBGRA {
		for i := 0; i < len(data); i += 4 {
			data[i], data[i+2] = data[i+2], data[i]
		}
	}

	return &Frame{
		Data:   data,
		Width:  int32(w),
		Height: int32(h),
		Format: format,
		PTS:    pts,
	}
}
