// Copyright 2026 The Multical Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package affinity reports how many CPUs the current process may run on.
// Under cgroup or taskset restrictions this can be fewer than the host has.
package affinity

// Count returns the number of CPUs available to the current process. It is
// never less than one.
func Count() int {
	if n := count(); n > 0 {
		return n
	}
	return 1
}
