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

import "cmp"

// A Bound names a constant through a zero-sized type so the constant can
// take part in a refined value's type:
//
//	type three struct{}
//	func (three) Bound() int { return 3 }
//
//	n := refine.Must[int, refine.GreaterThan[int, three]](5)
//
// Bound-parameterized predicates are untagged: their identity includes the
// constant, and a shared tag would let a fact registered against one
// constant vouch for another. They therefore always re-check under
// arithmetic, like the combinators.
type Bound[T any] interface {
	Bound() T
}

type GreaterThan[T cmp.Ordered, B Bound[T]] struct{}

func (GreaterThan[T, B]) Holds(v T) bool {
	var b B
	return v > b.Bound()
}

type AtLeast[T cmp.Ordered, B Bound[T]] struct{}

func (AtLeast[T, B]) Holds(v T) bool {
	var b B
	return v >= b.Bound()
}

type LessThan[T cmp.Ordered, B Bound[T]] struct{}

func (LessThan[T, B]) Holds(v T) bool {
	var b B
	return v < b.Bound()
}

type AtMost[T cmp.Ordered, B Bound[T]] struct{}

func (AtMost[T, B]) Holds(v T) bool {
	var b B
	return v <= b.Bound()
}

type EqualTo[T comparable, B Bound[T]] struct{}

func (EqualTo[T, B]) Holds(v T) bool {
	var b B
	return v == b.Bound()
}

type NotEqualTo[T comparable, B Bound[T]] struct{}

func (NotEqualTo[T, B]) Holds(v T) bool {
	var b B
	return v != b.Bound()
}

// InOpenRange holds on (Lo, Hi), both bounds excluded; the closed form is
// interval.Within.
type InOpenRange[T cmp.Ordered, L, H Bound[T]] struct{}

func (InOpenRange[T, L, H]) Holds(v T) bool {
	var lo L
	var hi H
	return v > lo.Bound() && v < hi.Bound()
}

// InHalfOpenRange holds on [Lo, Hi), the usual index range.
type InHalfOpenRange[T cmp.Ordered, L, H Bound[T]] struct{}

func (InHalfOpenRange[T, L, H]) Holds(v T) bool {
	var lo L
	var hi H
	return v >= lo.Bound() && v < hi.Bound()
}

// DivisibleBy holds where the named constant divides v. A zero constant
// divides nothing.
type DivisibleBy[T Integer, B Bound[T]] struct{}

func (DivisibleBy[T, B]) Holds(v T) bool {
	var b B
	d := b.Bound()
	return d != 0 && v%d == 0
}

// NonNil and Nil refine pointers. They are constant-free and tagged.

type NonNil[E any] struct{}

func (NonNil[E]) Holds(v *E) bool { return v != nil }
func (NonNil[E]) Tag() Tag        { return TagNonNil }

type Nil[E any] struct{}

func (Nil[E]) Holds(v *E) bool { return v == nil }
func (Nil[E]) Tag() Tag        { return TagNil }
