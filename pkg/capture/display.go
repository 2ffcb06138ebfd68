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
	"github.com/vova616/screenshot"

	"github.com/glimt/screengrab/pkg/errors"
)

// Display identifies the capture target. Resolved once at startup and
// immutable for the lifetime of the session.
type Display struct {
	ID     string
	Width  int32
	Height int32
}

// PrimaryDisplay resolves the primary display and its current dimensions.
func PrimaryDisplay() (Display, error) {
	rect, err := screenshot.ScreenRect()
	if err != nil {
		return Display{}, errors.ErrNoPrimaryDisplay
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return Display{}, errors.ErrNoPrimaryDisplay
	}

	return Display{
		ID:     "primary",
		Width:  int32(rect.Dx()),
		Height: int32(rect.Dy()),
	}, nil
}
