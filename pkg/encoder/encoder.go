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
	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/config"
)

// Encoder consumes raw frames and produces the output container.
type Encoder interface {
	// SendFrame submits one raw frame for encoding.
	SendFrame(frame *capture.Frame) error

	// Finish flushes buffered data and closes the output container.
	// The encoder is unusable afterwards.
	Finish() error
}

// Factory builds the encoder for a session. The display supplies input
// dimensions; output dimensions may be overridden by config.
type Factory func(conf *config.RecorderConfig, display capture.Display) (Encoder, error)
