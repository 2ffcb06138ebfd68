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

package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPrimaryDisplay = errors.New("no primary display found")
	ErrEncoderClosed    = errors.New("encoder already finished")
	ErrSessionFrozen    = errors.New("session frozen, capture worker did not stop")
)

func New(err string) error {
	return errors.New(err)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func ErrCouldNotParseConfig(err error) error {
	return fmt.Errorf("could not parse config: %v", err)
}

func ErrInvalidInput(field string) error {
	return fmt.Errorf("config has missing or invalid field: %s", field)
}

func ErrEncoderFailed(op string, err error) error {
	return fmt.Errorf("encoder %s failed: %w", op, err)
}

func ErrCaptureFailed(err error) error {
	return fmt.Errorf("capture failed: %w", err)
}

type ErrArray struct {
	errs []error
}

func (e *ErrArray) AppendErr(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrArray) Check(err error) {
	if err != nil {
		e.errs = append(e.errs, err)
	}
}

func (e *ErrArray) ToError() error {
	if len(e.errs) == 0 {
		return nil
	}
	msg := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msg = append(msg, err.Error())
	}
	return errors.New(strings.Join(msg, "; "))
}
