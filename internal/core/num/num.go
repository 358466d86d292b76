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

// Package num implements checked and saturating arithmetic over the builtin
// numeric kinds. The two families have deliberately different contracts:
// checked operations report overflow to the caller, saturating operations
// are total and clamp to the representable limits. They must not be mixed
// up: saturation is for bound estimation, checked arithmetic for data.
package num

import "math"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// IsFloat reports whether T has a floating-point underlying type.
func IsFloat[T Number]() bool {
	return T(1)/T(2) != 0
}

func isUnsigned[T Number]() bool {
	return T(0)-1 > 0
}

// Limits returns the smallest and largest finite values of T. For
// floating-point types these are the negative and positive largest finite
// magnitudes, not infinities.
func Limits[T Number]() (lo, hi T) {
	if IsFloat[T]() {
		// A float64 max survives the round trip through T only if T is
		// 64 bits wide. The limits go through variables: converting the
		// untyped constants directly would have to be representable in
		// every type of the Number set.
		mx := math.MaxFloat64
		if c := T(mx); float64(c) == mx {
			return -c, c
		}
		mx = math.MaxFloat32
		hi = T(mx)
		return -hi, hi
	}
	// Double until the wraparound, which Go defines as two's complement.
	// The loop never executes for float instantiations but must still
	// type check for them, hence no shifts here.
	x := T(1)
	for x+x > x {
		x += x
	}
	hi = x + (x - 1)
	if isUnsigned[T]() {
		return 0, hi
	}
	return -hi - 1, hi
}

// isInfinite reports whether v lies outside the finite range of T. Integer
// values never do; NaN compares false on both sides and is not infinite.
func isInfinite[T Number](v T) bool {
	lo, hi := Limits[T]()
	return v < lo || v > hi
}
