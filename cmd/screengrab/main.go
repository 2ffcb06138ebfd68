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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/livekit/protocol/logger"
	"github.com/urfave/cli/v3"

	"github.com/glimt/screengrab/pkg/config"
	"github.com/glimt/screengrab/pkg/service"
	"github.com/glimt/screengrab/version"
)

func main() {
	cmd := &cli.Command{
		Name:        "screengrab",
		Usage:       "record the primary display to an H.264 file",
		Version:     version.Version,
		Description: "captures the primary display for a fixed duration and encodes it to MP4",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "screengrab yaml config file",
				Sources: cli.EnvVars("SCREENGRAB_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config-body",
				Usage:   "screengrab yaml config body",
				Sources: cli.EnvVars("SCREENGRAB_CONFIG_BODY"),
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output filename, overrides config",
			},
			&cli.DurationFlag{
				Name:  "duration",
				Usage: "recording duration, overrides config",
			},
		},
		Action: runRecorder,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runRecorder(_ context.Context, c *cli.Command) error {
	configFile := c.String("config")
	configBody := c.String("config-body")
	if configBody == "" && configFile != "" {
		content, err := os.ReadFile(configFile)
		if err != nil {
			return err
		}
		configBody = string(content)
	}

	conf, err := config.NewRecorderConfig(configBody)
	if err != nil {
		return err
	}
	if output := c.String("output"); output != "" {
		conf.Output.Filename = output
	}
	if duration := c.Duration("duration"); duration > 0 {
		conf.Output.Duration = duration
	}

	svc, err := service.New(conf)
	if err != nil {
		return err
	}

	if conf.HealthPort != 0 {
		go func() {
			_ = http.ListenAndServe(fmt.Sprintf(":%d", conf.HealthPort), &httpHandler{svc: svc})
		}()
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGQUIT)

	killChan := make(chan os.Signal, 1)
	signal.Notify(killChan, syscall.SIGINT)

	go func() {
		select {
		case sig := <-stopChan:
			logger.Infow("exit requested, finishing recording then shutting down", "signal", sig)
			svc.Shutdown(false)
		case sig := <-killChan:
			logger.Infow("exit requested, stopping recording and shutting down", "signal", sig)
			svc.Shutdown(true)
		}
	}()

	logger.Infow("recording",
		"output", conf.Output.Filename,
		"duration", conf.Output.Duration/time.Second,
	)

	return svc.Run()
}
