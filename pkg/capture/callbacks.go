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
	"sync"
)

type Callbacks struct {
	mu sync.RWMutex

	// session callbacks
	onFrame func(*Frame, Control) error

	// upstream callbacks
	onError  func(error)
	onClosed []func()
}

func (c *Callbacks) SetOnFrame(f func(*Frame, Control) error) {
	c.mu.Lock()
	c.onFrame = f
	c.mu.Unlock()
}

func (c *Callbacks) OnFrame(frame *Frame, ctl Control) error {
	c.mu.RLock()
	onFrame := c.onFrame
	c.mu.RUnlock()
	if onFrame != nil {
		return onFrame(frame, ctl)
	}
	return nil
}

func (c *Callbacks) SetOnError(f func(error)) {
	c.mu.Lock()
	c.onError = f
	c.mu.Unlock()
}

func (c *Callbacks) OnError(err error) {
	c.mu.RLock()
	onError := c.onError
	c.mu.RUnlock()
	if onError != nil {
		onError(err)
	}
}

func (c *Callbacks) AddOnClosed(f func()) {
	c.mu.Lock()
	c.onClosed = append(c.onClosed, f)
	c.mu.Unlock()
}

func (c *Callbacks) OnClosed() {
	c.mu.RLock()
	for _, onClosed := range c.onClosed {
		onClosed()
	}
	c.mu.RUnlock()
}
