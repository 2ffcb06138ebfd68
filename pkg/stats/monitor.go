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

package stats

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Monitor struct {
	framesCaptured prometheus.Counter
	framesDropped  prometheus.Counter
	encodeTime     prometheus.Histogram
	recording      prometheus.Gauge
}

func NewMonitor(reg prometheus.Registerer) *Monitor {
	m := &Monitor{
		framesCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "screengrab",
			Subsystem: "recorder",
			Name:      "frames_captured_total",
		}),
		framesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "screengrab",
			Subsystem: "recorder",
			Name:      "frames_dropped_total",
		}),
		encodeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "screengrab",
			Subsystem: "recorder",
			Name:      "encode_duration_ms",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		recording: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "screengrab",
			Subsystem: "recorder",
			Name:      "recording",
		}),
	}

	reg.MustRegister(m.framesCaptured, m.framesDropped, m.encodeTime, m.recording)
	return m
}

func (m *Monitor) RecordingStarted() {
	m.recording.Set(1)
}

func (m *Monitor) RecordingEnded() {
	m.recording.Set(0)
}

func (m *Monitor) FrameCaptured() {
	m.framesCaptured.Inc()
}

func (m *Monitor) FrameDropped() {
	m.framesDropped.Inc()
}

func (m *Monitor) FrameEncoded(elapsed time.Duration) {
	m.encodeTime.Observe(float64(elapsed.Milliseconds()))
}

func PromHandler() http.Handler {
	return promhttp.Handler()
}
