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

import "math"

// The standard predicate set.

type Positive[T Number] struct{}

func (Positive[T]) Holds(v T) bool { return v > 0 }
func (Positive[T]) Tag() Tag       { return TagPositive }
func (Positive[T]) ExcludesZero()  {}

type Negative[T Number] struct{}

func (Negative[T]) Holds(v T) bool { return v < 0 }
func (Negative[T]) Tag() Tag       { return TagNegative }
func (Negative[T]) ExcludesZero()  {}

type NonNegative[T Number] struct{}

func (NonNegative[T]) Holds(v T) bool { return v >= 0 }
func (NonNegative[T]) Tag() Tag       { return TagNonNegative }

type NonPositive[T Number] struct{}

func (NonPositive[T]) Holds(v T) bool { return v <= 0 }
func (NonPositive[T]) Tag() Tag       { return TagNonPositive }

type NonZero[T Number] struct{}

func (NonZero[T]) Holds(v T) bool { return v != 0 }
func (NonZero[T]) Tag() Tag       { return TagNonZero }
func (NonZero[T]) ExcludesZero()  {}

type Zero[T Number] struct{}

func (Zero[T]) Holds(v T) bool { return v == 0 }
func (Zero[T]) Tag() Tag       { return TagZero }

type Even[T Integer] struct{}

func (Even[T]) Holds(v T) bool { return v%2 == 0 }
func (Even[T]) Tag() Tag       { return TagEven }

// Odd values are necessarily non-zero, so Odd divisors are legal.
type Odd[T Integer] struct{}

func (Odd[T]) Holds(v T) bool { return v%2 != 0 }
func (Odd[T]) Tag() Tag       { return TagOdd }
func (Odd[T]) ExcludesZero()  {}

type PowerOfTwo[T Integer] struct{}

func (PowerOfTwo[T]) Holds(v T) bool { return v > 0 && v&(v-1) == 0 }
func (PowerOfTwo[T]) Tag() Tag       { return TagPowerOfTwo }
func (PowerOfTwo[T]) ExcludesZero()  {}

// Finite holds for values that are neither NaN nor an infinity.
type Finite[T Float] struct{}

func (Finite[T]) Holds(v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
func (Finite[T]) Tag() Tag { return TagFinite }

// Normalized holds for values in [-1, 1].
type Normalized[T Number] struct{}

func (Normalized[T]) Holds(v T) bool {
	if v > 1 {
		return false
	}
	if v >= 0 {
		return true
	}
	return v >= T(0)-1
}
func (Normalized[T]) Tag() Tag { return TagNormalized }

type NonEmptyString[S ~string] struct{}

func (NonEmptyString[S]) Holds(v S) bool { return len(v) > 0 }
func (NonEmptyString[S]) Tag() Tag       { return TagNonEmpty }

type EmptyString[S ~string] struct{}

func (EmptyString[S]) Holds(v S) bool { return len(v) == 0 }
func (EmptyString[S]) Tag() Tag       { return TagEmpty }

type NonEmptySlice[E any] struct{}

func (NonEmptySlice[E]) Holds(v []E) bool { return len(v) > 0 }
func (NonEmptySlice[E]) Tag() Tag         { return TagNonEmpty }

type EmptySlice[E any] struct{}

func (EmptySlice[E]) Holds(v []E) bool { return len(v) == 0 }
func (EmptySlice[E]) Tag() Tag         { return TagEmpty }

// Always and Never bound the predicate lattice; they exist mostly for
// tests and for vacuous instantiations.

type Always[T any] struct{}

func (Always[T]) Holds(T) bool { return true }
func (Always[T]) Tag() Tag     { return TagAlways }

type Never[T any] struct{}

func (Never[T]) Holds(T) bool { return false }
func (Never[T]) Tag() Tag     { return TagNever }
