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

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Integer multiplication is decided in decimal: the product of two 64-bit
// operands needs a wider intermediate than any builtin integer type offers.
// A product has at most 40 significant digits, so precision 50 keeps every
// operation here exact.
var decCtx = apd.BaseContext.WithPrecision(50)

// decOf returns the exact decimal rendering of an integer-kind v.
func decOf[T Number](v T) *apd.Decimal {
	var d apd.Decimal
	if v >= 0 {
		d.Coeff.SetUint64(uint64(v))
		return &d
	}
	n := int64(v)
	if n == math.MinInt64 {
		d.Coeff.SetUint64(1 << 63)
	} else {
		d.Coeff.SetUint64(uint64(-n))
	}
	d.Negative = true
	return &d
}

// decTo converts an exponent-zero decimal already known to lie within
// Limits[T] back to T.
func decTo[T Number](d *apd.Decimal) T {
	if d.Negative {
		n, err := d.Int64()
		if err != nil {
			panic("num: decimal out of range after limit check")
		}
		return T(n)
	}
	return T(d.Coeff.Uint64())
}

// mulExact computes a*b exactly in decimal and classifies the product
// against the limits of T: cmp < 0 means underflow, cmp > 0 overflow.
func mulExact[T Number](a, b T) (prod apd.Decimal, cmp int) {
	_, _ = decCtx.Mul(&prod, decOf(a), decOf(b))
	lo, hi := Limits[T]()
	switch {
	case prod.Cmp(decOf(lo)) < 0:
		cmp = -1
	case prod.Cmp(decOf(hi)) > 0:
		cmp = 1
	}
	return prod, cmp
}
