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
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/stats"
)

type fakeControl struct {
	stopped bool
}

func (c *fakeControl) Stop() {
	c.stopped = true
}

func testFrame() *capture.Frame {
	return &capture.Frame{Data: make([]byte, 16), Width: 2, Height: 2}
}

func newTestSink(stop <-chan struct{}, enc *fakeEncoder) *FrameSink {
	return newFrameSink(enc, stop, &StateManager{}, stats.NewMonitor(prometheus.NewRegistry()), io.Discard)
}

func TestSinkContinuesOnEmptyChannel(t *testing.T) {
	stop := make(chan struct{}, 1)
	enc := &fakeEncoder{}
	s := newTestSink(stop, enc)
	ctl := &fakeControl{}

	require.NoError(t, s.HandleFrame(testFrame(), ctl))
	require.False(t, ctl.stopped)
	require.EqualValues(t, 0, enc.finished.Load())
	require.EqualValues(t, 1, enc.sent.Load())
}

func TestSinkStopOnSignal(t *testing.T) {
	stop := make(chan struct{}, 1)
	enc := &fakeEncoder{}
	s := newTestSink(stop, enc)
	ctl := &fakeControl{}

	stop <- struct{}{}
	require.NoError(t, s.HandleFrame(testFrame(), ctl))
	require.True(t, ctl.stopped)
	require.EqualValues(t, 1, enc.finished.Load())
}

// a dropped sender must behave exactly like an explicit signal
func TestSinkStopOnClosedChannel(t *testing.T) {
	stop := make(chan struct{}, 1)
	enc := &fakeEncoder{}
	s := newTestSink(stop, enc)
	ctl := &fakeControl{}

	close(stop)
	require.NoError(t, s.HandleFrame(testFrame(), ctl))
	require.True(t, ctl.stopped)
	require.EqualValues(t, 1, enc.finished.Load())
}

func TestFinalizeAtMostOnce(t *testing.T) {
	stop := make(chan struct{}, 1)
	enc := &fakeEncoder{}
	s := newTestSink(stop, enc)

	require.NoError(t, s.Finalize())
	require.NoError(t, s.Finalize())
	require.NoError(t, s.Finalize())
	require.EqualValues(t, 1, enc.finished.Load())
	require.Equal(t, StateFinalizing, s.state.GetState())
}
