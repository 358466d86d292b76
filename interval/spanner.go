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

package interval

import "github.com/yotto3s/refine"

// A Spanner is a named interval: a zero-sized type whose Span method
// returns fixed bounds. Naming the bounds in a type lets a range take part
// in the type of a refined value:
//
//	type percent struct{}
//	func (percent) Span() interval.Span[int] { return interval.Of(0, 100) }
//
//	p := refine.Must[int, interval.Within[int, percent]](42)
type Spanner[T refine.Number] interface {
	Span() Span[T]
}

// Within adapts a Spanner into a predicate: it holds where the named span
// contains the value. It composes with the whole refine machinery
// unmodified.
type Within[T refine.Number, S Spanner[T]] struct{}

func (Within[T, S]) Holds(v T) bool {
	var s S
	return s.Span().Contains(v)
}

// FromRefined converts a statically range-refined value into a Bounded
// carrying the same span. The refinement is the proof, so no re-check.
func FromRefined[T refine.Number, S Spanner[T]](r refine.Refined[T, Within[T, S]]) Bounded[T] {
	var s S
	return TrustedIn(r.Get(), s.Span())
}
