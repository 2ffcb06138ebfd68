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

package logging

import (
	"fmt"
	"strings"

	"github.com/livekit/protocol/logger"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/glimt/screengrab/pkg/config"
)

// CmdLogger logs encoder process output
type CmdLogger struct {
	name string
	file *lumberjack.Logger
}

func NewCmdLogger(name string, debug config.DebugConfig) *CmdLogger {
	l := &CmdLogger{
		name: name,
	}
	if debug.EncoderLogFile != "" {
		maxSize := debug.EncoderLogMaxSize
		if maxSize == 0 {
			maxSize = 100
		}
		l.file = &lumberjack.Logger{
			Filename:   debug.EncoderLogFile,
			MaxSize:    maxSize,
			MaxBackups: 1,
		}
	}
	return l
}

func (l *CmdLogger) Write(p []byte) (int, error) {
	if l.file != nil {
		_, _ = l.file.Write(p)
	}

	s := strings.TrimRight(string(p), "\n")
	if strings.HasPrefix(s, "frame=") {
		// per-frame progress spam
		logger.Debugw(fmt.Sprintf("%s: %s", l.name, s))
	} else if s != "" {
		logger.Infow(fmt.Sprintf("%s: %s", l.name, s))
	}
	return len(p), nil
}

func (l *CmdLogger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}
