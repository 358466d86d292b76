// Copyright 2025 The Refine Authors
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

package refine

// Predicate combinators. Combinators are themselves predicates and nest
// arbitrarily: And[int, Positive[int], Not[int, Odd[int]]]. They carry no
// tag, so no preservation fact ever applies to a composed predicate unless
// the integrator registers one for a named wrapper of their own.

type And[T any, P, Q Predicate[T]] struct{}

func (And[T, P, Q]) Holds(v T) bool {
	var p P
	var q Q
	return p.Holds(v) && q.Holds(v)
}

type Or[T any, P, Q Predicate[T]] struct{}

func (Or[T, P, Q]) Holds(v T) bool {
	var p P
	var q Q
	return p.Holds(v) || q.Holds(v)
}

type Not[T any, P Predicate[T]] struct{}

func (Not[T, P]) Holds(v T) bool {
	var p P
	return !p.Holds(v)
}

// Implies is vacuously true where P does not hold.
type Implies[T any, P, Q Predicate[T]] struct{}

func (Implies[T, P, Q]) Holds(v T) bool {
	var p P
	var q Q
	return !p.Holds(v) || q.Holds(v)
}
