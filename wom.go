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

// Package wom provides write-only values.
//
// A Wom holds a value that may be written, mutated and finally handed off,
// but never read through its read accessors: Ref and Get panic with a
// *ReadError every time they are called. Use it to mark secrets and other
// sensitive state so that an accidental read fails loudly at the call site
// instead of leaking quietly.
//
// Mutable access is deliberately left open. Mut returns a pointer to the
// contents, and anything holding that pointer can read through it. The
// wrapper only blocks the dedicated read paths; it is not memory protection.
//
// Prefer accepting a WriteOnly[T] in APIs, which has no read methods at all.
package wom

// Wom makes T write-only. The zero value is an empty, writable Wom.
//
// Wom is not safe for concurrent use; guard it the way you would guard a
// plain T. A Wom should have a single owner: pass *Wom around, don't copy it.
// go vet reports copies. A copy made anyway shares storage and consumption
// state with the original.
type Wom[T any] struct {
	_ noCopy

	s *slot[T]
}

type slot[T any] struct {
	v        T
	consumed bool
}

// Wrap takes ownership of v.
func Wrap[T any](v T) *Wom[T] {
	return &Wom[T]{s: &slot[T]{v: v}}
}

// Ref always panics with a *ReadError.
func (w *Wom[T]) Ref() *T {
	panic(readViolation[T]())
}

// Get always panics with a *ReadError.
func (w *Wom[T]) Get() T {
	panic(readViolation[T]())
}

// TryRef is the non-panicking form of Ref. It never returns the contents.
// The attempt still counts towards ReadViolations but is only logged at
// debug level.
func (w *Wom[T]) TryRef() (*T, error) {
	return nil, tryReadViolation[T]()
}

// Mut returns a pointer to the wrapped value. The pointer can be read
// through; see the package documentation.
func (w *Wom[T]) Mut() *T {
	w.mustLive()
	if w.s == nil {
		w.s = &slot[T]{}
	}
	return &w.s.v
}

// Set replaces the wrapped value.
func (w *Wom[T]) Set(v T) {
	*w.Mut() = v
}

// Update calls fn with a pointer to the wrapped value.
func (w *Wom[T]) Update(fn func(v *T)) {
	fn(w.Mut())
}

// Reset overwrites the wrapped value with the zero value of T.
func (w *Wom[T]) Reset() {
	var zero T
	*w.Mut() = zero
}

// IntoInner returns the wrapped value and consumes w. Any later write
// operation on w panics with a *ConsumedError.
func (w *Wom[T]) IntoInner() T {
	p := w.Mut()
	w.s.consumed = true

	v := *p
	var zero T
	*p = zero
	return v
}

// Consumed reports whether IntoInner has been called. A nil *Wom counts as
// consumed.
func (w *Wom[T]) Consumed() bool {
	return w == nil || (w.s != nil && w.s.consumed)
}

func (w *Wom[T]) mustLive() {
	if w.Consumed() {
		panic(consumedViolation[T]())
	}
}

// noCopy is picked up by go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
