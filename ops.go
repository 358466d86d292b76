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

import (
	"cmp"

	"github.com/yotto3s/refine/internal/core/num"
)

// Arithmetic over refined values. Add and Mul consult the given fact
// registry: a registered (predicate, operator) pair yields a trusted
// result with no re-validation, anything else re-checks the predicate.
// Every operation computes the value with checked arithmetic first; a
// preservation fact shortcuts the predicate check, never the overflow
// check.

func Add[T Number, P Predicate[T]](facts *Facts, a, b Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedAdd(a.v, b.v)
	if !ok {
		return Refined[T, P]{}, overflow(AddOp, a.v, b.v)
	}
	if facts.Preserved(TagOf[T, P](), AddOp) {
		return Trusted[T, P](r), nil
	}
	return recheck[T, P](r)
}

func Mul[T Number, P Predicate[T]](facts *Facts, a, b Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedMul(a.v, b.v)
	if !ok {
		return Refined[T, P]{}, overflow(MultiplyOp, a.v, b.v)
	}
	if facts.Preserved(TagOf[T, P](), MultiplyOp) {
		return Trusted[T, P](r), nil
	}
	return recheck[T, P](r)
}

// Sub always re-checks; subtraction is never a registered fact.
func Sub[T Number, P Predicate[T]](a, b Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedSub(a.v, b.v)
	if !ok {
		return Refined[T, P]{}, overflow(SubtractOp, a.v, b.v)
	}
	return recheck[T, P](r)
}

// Neg always re-checks; the library makes no claim about sign invariants
// under negation.
func Neg[T Number, P Predicate[T]](a Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedNeg(a.v)
	if !ok {
		return Refined[T, P]{}, overflow(NegateOp, a.v)
	}
	return recheck[T, P](r)
}

// Pos is the identity; unary plus proves nothing new.
func Pos[T Number, P Predicate[T]](a Refined[T, P]) Refined[T, P] { return a }

func Inc[T Number, P Predicate[T]](a Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedAdd(a.v, T(1))
	if !ok {
		return Refined[T, P]{}, overflow(AddOp, a.v, T(1))
	}
	return recheck[T, P](r)
}

func Dec[T Number, P Predicate[T]](a Refined[T, P]) (Refined[T, P], error) {
	r, ok := num.CheckedSub(a.v, T(1))
	if !ok {
		return Refined[T, P]{}, overflow(SubtractOp, a.v, T(1))
	}
	return recheck[T, P](r)
}

// Div divides by a divisor refined by a zero-free predicate, which makes
// the operation total over the base type. No refinement is claimed for the
// quotient. The single representation failure, the most negative value
// divided by -1, reports overflow.
func Div[T Number, P Predicate[T], Q ZeroFree[T]](a Refined[T, P], b Refined[T, Q]) (T, error) {
	r, ok := num.CheckedDiv(a.v, b.v)
	if !ok {
		var zero T
		return zero, overflow(QuotientOp, a.v, b.v)
	}
	return r, nil
}

// Mod is total for integer kinds given a zero-free divisor: Go defines the
// most negative value mod -1 as 0.
func Mod[T Integer, P Predicate[T], Q ZeroFree[T]](a Refined[T, P], b Refined[T, Q]) T {
	return a.v % b.v
}

// Min, Max and Clamp preserve P by construction: the result is one of the
// already-validated inputs.

func Min[T cmp.Ordered, P Predicate[T]](a, b Refined[T, P]) Refined[T, P] {
	if b.v < a.v {
		return b
	}
	return a
}

func Max[T cmp.Ordered, P Predicate[T]](a, b Refined[T, P]) Refined[T, P] {
	if b.v > a.v {
		return b
	}
	return a
}

func Clamp[T cmp.Ordered, P Predicate[T]](v, lo, hi Refined[T, P]) Refined[T, P] {
	switch {
	case v.v < lo.v:
		return lo
	case v.v > hi.v:
		return hi
	}
	return v
}

// Abs and Square land in the non-negative refinement regardless of P, by
// elementary arithmetic rather than the fact registry. Their edge cases
// (negating the most negative value, squaring past the representable
// range) are representation failures and report overflow.

func Abs[T Number, P Predicate[T]](a Refined[T, P]) (Refined[T, NonNegative[T]], error) {
	return AbsOf(a.v)
}

func AbsOf[T Number](v T) (Refined[T, NonNegative[T]], error) {
	if v != v { // NaN is not non-negative
		return Refined[T, NonNegative[T]]{}, violation[T, NonNegative[T]](v)
	}
	if v >= 0 {
		return Trusted[T, NonNegative[T]](v), nil
	}
	r, ok := num.CheckedNeg(v)
	if !ok {
		return Refined[T, NonNegative[T]]{}, overflow(NegateOp, v)
	}
	return Trusted[T, NonNegative[T]](r), nil
}

func Square[T Number, P Predicate[T]](a Refined[T, P]) (Refined[T, NonNegative[T]], error) {
	return SquareOf(a.v)
}

func SquareOf[T Number](v T) (Refined[T, NonNegative[T]], error) {
	if v != v { // NaN is not non-negative
		return Refined[T, NonNegative[T]]{}, violation[T, NonNegative[T]](v)
	}
	r, ok := num.CheckedMul(v, v)
	if !ok {
		return Refined[T, NonNegative[T]]{}, overflow(MultiplyOp, v, v)
	}
	return Trusted[T, NonNegative[T]](r), nil
}

func recheck[T any, P Predicate[T]](v T) (Refined[T, P], error) {
	r, ok := TryRefine[T, P](v)
	if !ok {
		return Refined[T, P]{}, violation[T, P](v)
	}
	return r, nil
}
