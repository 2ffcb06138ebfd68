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
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/frostbyte73/core"
	"github.com/livekit/protocol/logger"
	"go.uber.org/zap"

	"github.com/glimt/screengrab/pkg/capture"
	"github.com/glimt/screengrab/pkg/config"
	"github.com/glimt/screengrab/pkg/errors"
	"github.com/glimt/screengrab/pkg/logging"
)

// FFmpegEncoder pipes raw frames into an ffmpeg child process encoding
// H.264 into an MP4 container, no audio track.
type FFmpegEncoder struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	cmdLog *logging.CmdLogger
	ffLog  *zap.SugaredLogger

	frameSize   int
	waitTimeout time.Duration
	finished    core.Fuse
}

func NewFFmpeg(conf *config.RecorderConfig, display capture.Display) (Encoder, error) {
	args := buildArgs(conf, display)

	cmd := exec.Command("ffmpeg", args...)
	cmdLog := logging.NewCmdLogger("ffmpeg", conf.Debug)
	cmd.Stdout = cmdLog
	cmd.Stderr = cmdLog

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cmdLog.Close()
		return nil, errors.ErrEncoderFailed("create", err)
	}

	e := &FFmpegEncoder{
		cmd:         cmd,
		stdin:       stdin,
		cmdLog:      cmdLog,
		ffLog:       logger.GetLogger().(logger.ZapLogger).ToZap().WithOptions(zap.WithCaller(false)),
		frameSize:   int(display.Width) * int(display.Height) * conf.Capture.ColorFormat.BytesPerPixel(),
		waitTimeout: conf.FinalizeTimeout,
	}

	e.ffLog.Debugw("launching ffmpeg", "args", args)
	if err = cmd.Start(); err != nil {
		cmdLog.Close()
		return nil, errors.ErrEncoderFailed("start", err)
	}

	return e, nil
}

func buildArgs(conf *config.RecorderConfig, display capture.Display) []string {
	args := []string{
		"-hide_banner",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", conf.Capture.ColorFormat.PixFmt(),
		"-s", fmt.Sprintf("%dx%d", display.Width, display.Height),
		"-r", strconv.Itoa(int(conf.Capture.Framerate)),
		"-i", "pipe:0",
		"-an",
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-tune", "zerolatency",
		"-pix_fmt", "yuv420p",
	}
	if conf.Output.Width > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:%d", conf.Output.Width, conf.Output.Height))
	}
	return append(args, "-f", "mp4", conf.Output.Filename)
}

func (e *FFmpegEncoder) SendFrame(frame *capture.Frame) error {
	if e.finished.IsBroken() {
		return errors.ErrEncoderClosed
	}
	if len(frame.Data) != e.frameSize {
		return errors.ErrEncoderFailed("send", fmt.Errorf("frame size %d, expected %d", len(frame.Data), e.frameSize))
	}

	if _, err := e.stdin.Write(frame.Data); err != nil {
		return errors.ErrEncoderFailed("send", err)
	}
	return nil
}

func (e *FFmpegEncoder) Finish() error {
	err := errors.ErrEncoderClosed
	e.finished.Once(func() {
		defer e.cmdLog.Close()

		// EOF on stdin makes ffmpeg flush, write the moov atom, and exit
		if cerr := e.stdin.Close(); cerr != nil {
			err = errors.ErrEncoderFailed("finish", cerr)
			_ = e.cmd.Process.Kill()
			_ = e.cmd.Wait()
			return
		}

		done := make(chan error, 1)
		go func() {
			done <- e.cmd.Wait()
		}()

		select {
		case werr := <-done:
			if werr != nil {
				err = errors.ErrEncoderFailed("finish", werr)
				return
			}
			err = nil

		case <-time.After(e.waitTimeout):
			_ = e.cmd.Process.Kill()
			<-done
			err = errors.ErrEncoderFailed("finish", errors.ErrSessionFrozen)
		}
	})
	return err
}
