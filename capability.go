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

// Writer is the write capability of a write-only value.
type Writer[T any] interface {
	Mut() *T
	Set(v T)
	Update(fn func(v *T))
	Reset()
}

// Consumer hands the value off, ending the wrapper's life.
type Consumer[T any] interface {
	IntoInner() T
}

// WriteOnly is the surface APIs should accept: it has no read methods, so a
// read is a compile error instead of a panic.
type WriteOnly[T any] interface {
	Writer[T]
	Consumer[T]
}

// Referencer is the uniform accessor shape some code expects. *Wom
// satisfies it only for interop; every call panics.
type Referencer[T any] interface {
	Ref() *T
	Get() T
}

var (
	_ WriteOnly[int]  = (*Wom[int])(nil)
	_ Referencer[int] = (*Wom[int])(nil)
)

// AsWriteOnly returns w as a WriteOnly.
func AsWriteOnly[T any](w *Wom[T]) WriteOnly[T] {
	return w
}
