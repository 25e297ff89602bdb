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
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap/zapcore"
)

const redacted = "****"

// A Wom held by value inside another struct is printed field by field, and
// those fields are the noCopy marker and a pointer, so only an address shows.

func (w *Wom[T]) String() string {
	return "wom.Wom[" + typeName[T]() + "]{" + redacted + "}"
}

func (w *Wom[T]) GoString() string {
	return w.String()
}

// Format renders the redacted form for every verb and flag.
func (w *Wom[T]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, w.String())
}

func (w *Wom[T]) LogValue() slog.Value {
	return slog.StringValue(w.String())
}

func (w *Wom[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", typeName[T]())
	enc.AddString("value", redacted)
	return nil
}

var (
	_ fmt.Stringer            = (*Wom[int])(nil)
	_ fmt.GoStringer          = (*Wom[int])(nil)
	_ fmt.Formatter           = (*Wom[int])(nil)
	_ slog.LogValuer          = (*Wom[int])(nil)
	_ zapcore.ObjectMarshaler = (*Wom[int])(nil)
)
