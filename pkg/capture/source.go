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

// Source drives a blocking frame delivery loop on the calling thread.
// Frames are delivered strictly sequentially; no OnFrame call overlaps
// another. A finished source is not reusable.
type Source interface {
	// Start blocks until the session ends. It returns nil when stopped
	// cooperatively or when the capture target disappears, and the
	// handler's error when a frame callback fails.
	Start() error

	// Close force-stops the delivery loop. Safe to call from any thread.
	Close()
}

// Control is handed to the frame callback to request loop termination.
type Control interface {
	Stop()
}
