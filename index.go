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

// SetIndex sets element i of the wrapped slice. Out of range indexes panic as
// they would on the bare slice.
func SetIndex[S ~[]E, E any](w *Wom[S], i int, v E) {
	(*w.Mut())[i] = v
}

// IndexMut returns a pointer to element i of the wrapped slice.
func IndexMut[S ~[]E, E any](w *Wom[S], i int) *E {
	return &(*w.Mut())[i]
}

// Index always panics with a *ReadError.
func Index[S ~[]E, E any](_ *Wom[S], _ int) E {
	panic(readViolation[S]())
}

// SetKey stores v under k, allocating the wrapped map if it is nil.
func SetKey[M ~map[K]V, K comparable, V any](w *Wom[M], k K, v V) {
	m := w.Mut()
	if *m == nil {
		*m = make(M)
	}
	(*m)[k] = v
}

// DeleteKey removes k from the wrapped map.
func DeleteKey[M ~map[K]V, K comparable, V any](w *Wom[M], k K) {
	delete(*w.Mut(), k)
}

// Key always panics with a *ReadError.
func Key[M ~map[K]V, K comparable, V any](_ *Wom[M], _ K) V {
	panic(readViolation[M]())
}
