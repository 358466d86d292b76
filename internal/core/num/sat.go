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

// Saturating arithmetic. Total over T: results that are not representable
// clamp to Limits[T] in the direction of the overflow. NaN operands
// propagate unchanged.

func SatAdd[T Number](a, b T) T {
	lo, hi := Limits[T]()
	if IsFloat[T]() {
		r := a + b
		switch {
		case r > hi && !isInfinite(a) && !isInfinite(b):
			return hi
		case r < lo && !isInfinite(a) && !isInfinite(b):
			return lo
		}
		return r
	}
	if b > 0 && a > hi-b {
		return hi
	}
	if b < 0 && a < lo-b {
		return lo
	}
	return a + b
}

func SatSub[T Number](a, b T) T {
	lo, hi := Limits[T]()
	if IsFloat[T]() {
		r := a - b
		switch {
		case r > hi && !isInfinite(a) && !isInfinite(b):
			return hi
		case r < lo && !isInfinite(a) && !isInfinite(b):
			return lo
		}
		return r
	}
	if b < 0 && a > hi+b {
		return hi
	}
	if b > 0 && a < lo+b {
		return lo
	}
	return a - b
}

func SatMul[T Number](a, b T) T {
	lo, hi := Limits[T]()
	if IsFloat[T]() {
		r := a * b
		switch {
		case r > hi && !isInfinite(a) && !isInfinite(b):
			return hi
		case r < lo && !isInfinite(a) && !isInfinite(b):
			return lo
		}
		return r
	}
	if a == 0 || b == 0 {
		return 0
	}
	prod, cmp := mulExact(a, b)
	switch {
	case cmp < 0:
		return lo
	case cmp > 0:
		return hi
	}
	return decTo[T](&prod)
}

func SatNeg[T Number](v T) T {
	if IsFloat[T]() {
		return -v
	}
	lo, hi := Limits[T]()
	if isUnsigned[T]() {
		if v == 0 {
			return 0
		}
		return lo
	}
	if v == lo {
		return hi
	}
	return -v
}
