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

package num

// Checked arithmetic. Each operation reports ok=false instead of wrapping
// when the mathematical result is not representable in T. For float kinds
// that means a finite operand pair producing an infinity, or a nonzero
// pair whose product underflows to an exact zero; NaN propagates and is
// considered representable.

func CheckedAdd[T Number](a, b T) (T, bool) {
	if IsFloat[T]() {
		r := a + b
		if isInfinite(r) && !isInfinite(a) && !isInfinite(b) {
			return r, false
		}
		return r, true
	}
	lo, hi := Limits[T]()
	if b > 0 && a > hi-b {
		return 0, false
	}
	if b < 0 && a < lo-b {
		return 0, false
	}
	return a + b, true
}

func CheckedSub[T Number](a, b T) (T, bool) {
	if IsFloat[T]() {
		r := a - b
		if isInfinite(r) && !isInfinite(a) && !isInfinite(b) {
			return r, false
		}
		return r, true
	}
	lo, hi := Limits[T]()
	if b < 0 && a > hi+b {
		return 0, false
	}
	if b > 0 && a < lo+b {
		return 0, false
	}
	return a - b, true
}

func CheckedMul[T Number](a, b T) (T, bool) {
	if IsFloat[T]() {
		r := a * b
		if isInfinite(r) && !isInfinite(a) && !isInfinite(b) {
			return r, false
		}
		// Two nonzero operands multiplying to an exact zero have
		// underflowed past the smallest subnormal. A zero that was not
		// the mathematical result is as unrepresentable as an infinity,
		// and letting it through would let a preservation fact vouch
		// for a value the predicate rejects.
		if r == 0 && a != 0 && b != 0 {
			return r, false
		}
		return r, true
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	prod, cmp := mulExact(a, b)
	if cmp != 0 {
		return 0, false
	}
	return decTo[T](&prod), true
}

func CheckedNeg[T Number](v T) (T, bool) {
	if IsFloat[T]() {
		return -v, true
	}
	if v == 0 {
		return 0, true
	}
	if isUnsigned[T]() {
		return 0, false
	}
	lo, _ := Limits[T]()
	if v == lo {
		return 0, false
	}
	return -v, true
}

// CheckedDiv requires b != 0; refined divisors guarantee that upstream.
// The only integer overflow is the most negative value divided by -1.
func CheckedDiv[T Number](a, b T) (T, bool) {
	if IsFloat[T]() {
		r := a / b
		if isInfinite(r) && !isInfinite(a) && !isInfinite(b) {
			return r, false
		}
		return r, true
	}
	lo, _ := Limits[T]()
	if lo != 0 && a == lo && b == T(0)-1 {
		return 0, false
	}
	return a / b, true
}
