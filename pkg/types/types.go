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

package types

type ColorFormat string

const (
	ColorFormatBGRA ColorFormat = "bgra"
	ColorFormatRGBA ColorFormat = "rgba"
)

func (f ColorFormat) Valid() bool {
	switch f {
	case ColorFormatBGRA, ColorFormatRGBA:
		return true
	default:
		return false
	}
}

// PixFmt returns the matching ffmpeg rawvideo pixel format name.
func (f ColorFormat) PixFmt() string {
	return string(f)
}

func (f ColorFormat) BytesPerPixel() int {
	return 4
}
