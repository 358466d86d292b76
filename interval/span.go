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

// Package interval implements closed-range predicates whose bounds
// propagate through arithmetic.
//
// Bound math and value math have deliberately different contracts. A
// derived bound is an estimate and may saturate: when the true bound would
// not fit the base type it clamps to the type's limit, which only ever
// widens the interval and never fails. A computed value is data and may
// not quietly wrap: value arithmetic is checked and overflow surfaces as
// *refine.OverflowError. Conflating the two is the classic latent bug in
// interval code, so they are kept in separate layers here.
package interval

import (
	"fmt"

	"github.com/yotto3s/refine"
	"github.com/yotto3s/refine/internal/core/num"
)

// A Span is the closed interval [Lo, Hi]. A span with Lo > Hi is legal to
// construct and denotes a predicate no value satisfies.
type Span[T refine.Number] struct {
	Lo, Hi T
}

// Of returns the span [lo, hi].
func Of[T refine.Number](lo, hi T) Span[T] {
	return Span[T]{Lo: lo, Hi: hi}
}

func (s Span[T]) Contains(v T) bool { return v >= s.Lo && v <= s.Hi }

// IsWellFormed reports Lo <= Hi. Ill-formed spans admit no values.
func (s Span[T]) IsWellFormed() bool { return s.Lo <= s.Hi }

func (s Span[T]) String() string { return fmt.Sprintf("[%v,%v]", s.Lo, s.Hi) }

// Span algebra. Output bounds depend only on operand bounds, never on the
// operand values, and saturate instead of failing.

func AddSpans[T refine.Number](a, b Span[T]) Span[T] {
	return Span[T]{
		Lo: num.SatAdd(a.Lo, b.Lo),
		Hi: num.SatAdd(a.Hi, b.Hi),
	}
}

func SubSpans[T refine.Number](a, b Span[T]) Span[T] {
	return Span[T]{
		Lo: num.SatSub(a.Lo, b.Hi),
		Hi: num.SatSub(a.Hi, b.Lo),
	}
}

// MulSpans takes the extrema of the four corner products; the extrema of a
// bilinear form over a box lie at a corner.
func MulSpans[T refine.Number](a, b Span[T]) Span[T] {
	ll := num.SatMul(a.Lo, b.Lo)
	lh := num.SatMul(a.Lo, b.Hi)
	hl := num.SatMul(a.Hi, b.Lo)
	hh := num.SatMul(a.Hi, b.Hi)
	return Span[T]{
		Lo: min(min(ll, lh), min(hl, hh)),
		Hi: max(max(ll, lh), max(hl, hh)),
	}
}

func NegSpan[T refine.Number](s Span[T]) Span[T] {
	return Span[T]{
		Lo: num.SatNeg(s.Hi),
		Hi: num.SatNeg(s.Lo),
	}
}
