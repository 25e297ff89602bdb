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

import "go.uber.org/atomic"

var (
	readViolations     = atomic.NewUint64(0)
	consumedViolations = atomic.NewUint64(0)
)

// ReadViolations returns how many times a read accessor has been called on
// any Wom in this process, including calls whose panic was recovered.
func ReadViolations() uint64 {
	return readViolations.Load()
}

// ConsumedViolations returns how many writes were attempted on consumed
// values.
func ConsumedViolations() uint64 {
	return consumedViolations.Load()
}

// ResetStats zeroes both counters.
func ResetStats() {
	readViolations.Store(0)
	consumedViolations.Store(0)
}
