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

import (
	"fmt"

	"github.com/yotto3s/refine"
	"github.com/yotto3s/refine/internal/core/num"
)

// A Bounded value carries its span alongside the value; the span plays the
// role of the predicate tag. Arithmetic derives the result span from the
// operand spans alone and the result value from checked arithmetic, so a
// successful operation is sound without re-validation: a non-overflowing
// result always lies within the saturated span.
type Bounded[T refine.Number] struct {
	v    T
	span Span[T]
}

// In returns v as a value of span s, or a *refine.RefinementError if v
// lies outside s.
func In[T refine.Number](v T, s Span[T]) (Bounded[T], error) {
	if !s.Contains(v) {
		return Bounded[T]{}, &refine.RefinementError{
			Predicate: s.String(),
			Value:     fmt.Sprint(v),
		}
	}
	return Bounded[T]{v: v, span: s}, nil
}

// MustIn is In panicking on violation, for constant inputs at
// initialization.
func MustIn[T refine.Number](v T, s Span[T]) Bounded[T] {
	b, err := In(v, s)
	if err != nil {
		panic(err)
	}
	return b
}

// TryIn is In without the error value.
func TryIn[T refine.Number](v T, s Span[T]) (Bounded[T], bool) {
	b, err := In(v, s)
	return b, err == nil
}

// TrustedIn performs no containment check; the caller asserts v lies in s.
func TrustedIn[T refine.Number](v T, s Span[T]) Bounded[T] {
	return Bounded[T]{v: v, span: s}
}

func (b Bounded[T]) Get() T         { return b.v }
func (b Bounded[T]) Span() Span[T]  { return b.span }
func (b Bounded[T]) String() string { return fmt.Sprint(b.v) }

func Add[T refine.Number](a, b Bounded[T]) (Bounded[T], error) {
	s := AddSpans(a.span, b.span)
	v, ok := num.CheckedAdd(a.v, b.v)
	if !ok {
		return Bounded[T]{}, &refine.OverflowError{
			Op: refine.AddOp, A: fmt.Sprint(a.v), B: fmt.Sprint(b.v),
		}
	}
	return TrustedIn(v, s), nil
}

func Sub[T refine.Number](a, b Bounded[T]) (Bounded[T], error) {
	s := SubSpans(a.span, b.span)
	v, ok := num.CheckedSub(a.v, b.v)
	if !ok {
		return Bounded[T]{}, &refine.OverflowError{
			Op: refine.SubtractOp, A: fmt.Sprint(a.v), B: fmt.Sprint(b.v),
		}
	}
	return TrustedIn(v, s), nil
}

func Mul[T refine.Number](a, b Bounded[T]) (Bounded[T], error) {
	s := MulSpans(a.span, b.span)
	v, ok := num.CheckedMul(a.v, b.v)
	if !ok {
		return Bounded[T]{}, &refine.OverflowError{
			Op: refine.MultiplyOp, A: fmt.Sprint(a.v), B: fmt.Sprint(b.v),
		}
	}
	return TrustedIn(v, s), nil
}

func Neg[T refine.Number](a Bounded[T]) (Bounded[T], error) {
	s := NegSpan(a.span)
	v, ok := num.CheckedNeg(a.v)
	if !ok {
		return Bounded[T]{}, &refine.OverflowError{
			Op: refine.NegateOp, A: fmt.Sprint(a.v),
		}
	}
	return TrustedIn(v, s), nil
}
