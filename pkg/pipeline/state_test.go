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

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpgradeState(t *testing.T) {
	s := &StateManager{}
	require.Equal(t, StateIdle, s.GetState())

	old, ok := s.UpgradeState(StateRecording)
	require.True(t, ok)
	require.Equal(t, StateIdle, old)

	// downgrades and repeats are refused
	_, ok = s.UpgradeState(StateRecording)
	require.False(t, ok)

	_, ok = s.UpgradeState(StateStopped)
	require.True(t, ok)

	_, ok = s.UpgradeState(StateFinalizing)
	require.False(t, ok)
	require.Equal(t, StateStopped, s.GetState())
}
