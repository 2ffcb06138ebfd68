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

package config

import (
	"time"

	"github.com/livekit/protocol/logger"
)

type BaseConfig struct {
	// optional
	Logging        *logger.Config `yaml:"logging"`         // logging config
	HealthPort     int            `yaml:"health_port"`     // status endpoint port, disabled when 0
	PrometheusPort int            `yaml:"prometheus_port"` // metrics endpoint port, disabled when 0

	SessionLimits `yaml:"session_limits"` // session duration limits

	// advanced
	FinalizeTimeout time.Duration `yaml:"finalize_timeout"` // max wait for the capture worker after stop is signaled
	Debug           DebugConfig   `yaml:"debug"`            // encoder debug output
}

type SessionLimits struct {
	MaxDuration time.Duration `yaml:"max_duration"` // hard ceiling on recording length, 0 to disable
}

type DebugConfig struct {
	EncoderLogFile    string `yaml:"encoder_log_file"`     // write raw ffmpeg output to a rotated file
	EncoderLogMaxSize int    `yaml:"encoder_log_max_size"` // max encoder log size in MB before rotation
}

func (c *BaseConfig) initLogger(values ...interface{}) error {
	zl, err := logger.NewZapLogger(c.Logging)
	if err != nil {
		return err
	}

	l := zl.WithValues(values...)

	logger.SetLogger(l, "screengrab")
	return nil
}
