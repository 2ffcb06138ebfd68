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

package service

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/frostbyte73/core"
	"github.com/livekit/protocol/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/config"
	"github.com/glimt/screengrab/pkg/encoder"
	"github.com/glimt/screengrab/pkg/errors"
	"github.com/glimt/screengrab/pkg/info"
	"github.com/glimt/screengrab/pkg/pipeline"
	"github.com/glimt/screengrab/pkg/stats"
)

// Service orchestrates one recording: it resolves the capture target,
// runs the session on a dedicated thread, signals stop when the
// configured duration elapses, and joins the worker with a bounded
// wait.
type Service struct {
	conf *config.RecorderConfig
	src  capture.Source
	ctrl *pipeline.Controller

	promServer *http.Server
	shutdown   core.Fuse
	killed     core.Fuse
}

func New(conf *config.RecorderConfig) (*Service, error) {
	display, err := capture.PrimaryDisplay()
	if err != nil {
		return nil, err
	}

	callbacks := &capture.Callbacks{}
	src := capture.NewX11Source(display, conf, callbacks)
	monitor := stats.NewMonitor(prometheus.DefaultRegisterer)

	s := &Service{
		conf: conf,
		src:  src,
		ctrl: pipeline.New(conf, display, src, callbacks, encoder.NewFFmpeg, monitor),
	}

	if conf.PrometheusPort > 0 {
		s.promServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", conf.PrometheusPort),
			Handler: stats.PromHandler(),
		}
		promListener, err := net.Listen("tcp", s.promServer.Addr)
		if err != nil {
			return nil, err
		}
		go func() {
			_ = s.promServer.Serve(promListener)
		}()
	}

	return s, nil
}

func (s *Service) Run() error {
	res := make(chan *info.RecordingInfo, 1)

	// the capture loop needs a dedicated thread
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() {
			// a worker panic is reported, never escalated
			if r := recover(); r != nil {
				logger.Errorw("capture worker panicked", fmt.Errorf("%v", r))
				s.ctrl.Info.SetFailed(fmt.Errorf("capture worker panicked: %v", r))
				res <- s.ctrl.Info
			}
		}()
		res <- s.ctrl.Run()
	}()

	select {
	case r := <-res:
		return s.report(r)

	case <-time.After(s.conf.Output.Duration):
		s.ctrl.SendStop(info.EndReasonStopSignal)

	case <-s.shutdown.Watch():
		if s.killed.IsBroken() {
			s.src.Close()
		}
		s.ctrl.SendStop(info.EndReasonStopSignal)
	}

	// bounded join, a frozen capture backend must not hang the process
	select {
	case r := <-res:
		return s.report(r)

	case <-time.After(s.conf.FinalizeTimeout + s.conf.FrameInterval()):
		logger.Warnw("capture worker missed the stop signal, closing source", nil)
		s.src.Close()
	}

	select {
	case r := <-res:
		return s.report(r)

	case <-time.After(s.conf.FinalizeTimeout):
		logger.Errorw("abandoning capture worker", errors.ErrSessionFrozen)
		s.ctrl.Info.SetFailed(errors.ErrSessionFrozen)
		return s.report(s.ctrl.Info)
	}
}

// Shutdown requests an early stop. With kill set, the source is closed
// without waiting for the next frame.
func (s *Service) Shutdown(kill bool) {
	if kill {
		s.killed.Break()
	}
	s.shutdown.Break()
}

func (s *Service) Status() ([]byte, error) {
	return json.Marshal(s.ctrl.Info)
}

// report logs the session outcome. Recording failures are reported but
// never escalated to a process failure.
func (s *Service) report(r *info.RecordingInfo) error {
	if s.promServer != nil {
		_ = s.promServer.Close()
	}

	switch r.Status {
	case info.StatusFailed:
		logger.Errorw("capture ended with error", errors.New(r.Error))
	default:
		logger.Infow("capture ended successfully",
			"status", r.Status,
			"reason", r.EndReason,
			"file", r.File.Filename,
			"size", r.File.Size,
		)
	}
	return nil
}
