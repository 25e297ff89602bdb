// Copyright 2026 LiveKit, Inc.
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

package wom

import (
	"errors"
	"reflect"
)

var (
	ErrReadOfWriteOnlyValue = errors.New("readably referencing write-only memory")
	ErrConsumed             = errors.New("write-only value already consumed")
)

// ReadError is the panic value of every read accessor. It wraps
// ErrReadOfWriteOnlyValue.
type ReadError struct {
	// Type is the Go type of the wrapped value.
	Type string
}

func (e *ReadError) Error() string {
	return ErrReadOfWriteOnlyValue.Error() + ": " + e.Type
}

func (e *ReadError) Unwrap() error {
	return ErrReadOfWriteOnlyValue
}

// ConsumedError is the panic value of a write to a Wom after IntoInner. It
// wraps ErrConsumed.
type ConsumedError struct {
	Type string
}

func (e *ConsumedError) Error() string {
	return ErrConsumed.Error() + ": " + e.Type
}

func (e *ConsumedError) Unwrap() error {
	return ErrConsumed
}

func readViolation[T any]() *ReadError {
	err := &ReadError{Type: typeName[T]()}
	readViolations.Inc()
	getLogger().Error("readably referencing write-only memory", "type", err.Type)
	return err
}

func tryReadViolation[T any]() *ReadError {
	err := &ReadError{Type: typeName[T]()}
	readViolations.Inc()
	getLogger().Debug("write-only memory read refused", "type", err.Type)
	return err
}

func consumedViolation[T any]() *ConsumedError {
	err := &ConsumedError{Type: typeName[T]()}
	consumedViolations.Inc()
	getLogger().Error("writing to consumed write-only value", "type", err.Type)
	return err
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
