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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrArray(t *testing.T) {
	errs := &ErrArray{}
	require.NoError(t, errs.ToError())

	errs.Check(nil)
	require.NoError(t, errs.ToError())

	errs.Check(ErrNoPrimaryDisplay)
	errs.AppendErr(ErrEncoderClosed)
	err := errs.ToError()
	require.Error(t, err)
	require.Contains(t, err.Error(), ErrNoPrimaryDisplay.Error())
	require.Contains(t, err.Error(), ErrEncoderClosed.Error())
}

func TestWrapping(t *testing.T) {
	err := ErrEncoderFailed("send", ErrEncoderClosed)
	require.True(t, Is(err, ErrEncoderClosed))
}
