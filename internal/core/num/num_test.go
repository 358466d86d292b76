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
	"math/big"
	"math/rand"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestLimits(t *testing.T) {
	checkLimits(t, "int8", int8(math.MinInt8), int8(math.MaxInt8))
	checkLimits(t, "int16", int16(math.MinInt16), int16(math.MaxInt16))
	checkLimits(t, "int32", int32(math.MinInt32), int32(math.MaxInt32))
	checkLimits(t, "int64", int64(math.MinInt64), int64(math.MaxInt64))
	checkLimits(t, "int", math.MinInt, math.MaxInt)
	checkLimits(t, "uint8", uint8(0), uint8(math.MaxUint8))
	checkLimits(t, "uint64", uint64(0), uint64(math.MaxUint64))
	checkLimits(t, "float32", float32(-math.MaxFloat32), float32(math.MaxFloat32))
	checkLimits(t, "float64", -math.MaxFloat64, math.MaxFloat64)
}

func checkLimits[T Number](t *testing.T, name string, wantLo, wantHi T) {
	t.Helper()
	lo, hi := Limits[T]()
	qt.Assert(t, qt.Equals(lo, wantLo), qt.Commentf("lo of %s", name))
	qt.Assert(t, qt.Equals(hi, wantHi), qt.Commentf("hi of %s", name))
}

func TestLimitsNamedType(t *testing.T) {
	type celsius float64
	type count uint16
	lo, hi := Limits[celsius]()
	qt.Assert(t, qt.Equals(lo, celsius(-math.MaxFloat64)))
	qt.Assert(t, qt.Equals(hi, celsius(math.MaxFloat64)))
	clo, chi := Limits[count]()
	qt.Assert(t, qt.Equals(clo, count(0)))
	qt.Assert(t, qt.Equals(chi, count(math.MaxUint16)))
}

func TestCheckedAdd(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{10, 20, 30, true},
		{math.MaxInt64, 1, 0, false},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MinInt64, -1, 0, false},
		{math.MinInt64, math.MaxInt64, -1, true},
		{-5, 3, -2, true},
	}
	for _, tc := range tests {
		got, ok := CheckedAdd(tc.a, tc.b)
		qt.Assert(t, qt.Equals(ok, tc.ok), qt.Commentf("%d+%d", tc.a, tc.b))
		if tc.ok {
			qt.Assert(t, qt.Equals(got, tc.want))
		}
	}

	_, ok := CheckedAdd(uint8(250), uint8(6))
	qt.Assert(t, qt.IsFalse(ok))
	got, ok := CheckedAdd(uint8(250), uint8(5))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, uint8(255)))

	_, ok = CheckedAdd(math.MaxFloat64, math.MaxFloat64)
	qt.Assert(t, qt.IsFalse(ok))
	f, ok := CheckedAdd(math.MaxFloat64, -math.MaxFloat64)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(f, 0.0))
}

func TestCheckedSub(t *testing.T) {
	_, ok := CheckedSub(uint16(0), uint16(1))
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = CheckedSub(int8(-128), int8(1))
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = CheckedSub(int8(127), int8(-1))
	qt.Assert(t, qt.IsFalse(ok))

	got, ok := CheckedSub(int8(-128), int8(-1))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, int8(-127)))

	_, ok = CheckedSub(-math.MaxFloat64, math.MaxFloat64)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestCheckedMul(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{0, math.MaxInt64, 0, true},
		{1 << 31, 1 << 31, 1 << 62, true},
		{3037000499, 3037000499, 9223372030926249001, true},
		{3037000500, 3037000500, 0, false},
		{math.MinInt64, -1, 0, false},
		{math.MinInt64, 1, math.MinInt64, true},
		{-4, 5, -20, true},
		{math.MaxInt64, -1, math.MinInt64 + 1, true},
	}
	for _, tc := range tests {
		got, ok := CheckedMul(tc.a, tc.b)
		qt.Assert(t, qt.Equals(ok, tc.ok), qt.Commentf("%d*%d", tc.a, tc.b))
		if tc.ok {
			qt.Assert(t, qt.Equals(got, tc.want))
		}
	}

	_, ok := CheckedMul(uint64(1<<32), uint64(1<<32))
	qt.Assert(t, qt.IsFalse(ok))
	u, ok := CheckedMul(uint64(1<<32), uint64(1<<31))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(u, uint64(1)<<63))

	_, ok = CheckedMul(int8(-128), int8(-1))
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = CheckedMul(1e200, 1e200)
	qt.Assert(t, qt.IsFalse(ok))

	// Underflow to an exact zero is a representation failure too.
	_, ok = CheckedMul(1e-300, 1e-300)
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = CheckedMul(1e-300, -1e-300)
	qt.Assert(t, qt.IsFalse(ok))

	f, ok := CheckedMul(1e-300, 1e300)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(f, 1.0))
	z, ok := CheckedMul(0.0, 1e-300)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(z, 0.0))
}

func TestCheckedNeg(t *testing.T) {
	got, ok := CheckedNeg(int32(7))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, int32(-7)))

	_, ok = CheckedNeg(int32(math.MinInt32))
	qt.Assert(t, qt.IsFalse(ok))

	u, ok := CheckedNeg(uint8(0))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(u, uint8(0)))

	_, ok = CheckedNeg(uint8(1))
	qt.Assert(t, qt.IsFalse(ok))

	f, ok := CheckedNeg(2.5)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(f, -2.5))
}

func TestCheckedDiv(t *testing.T) {
	got, ok := CheckedDiv(int64(7), int64(2))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, int64(3)))

	_, ok = CheckedDiv(int64(math.MinInt64), int64(-1))
	qt.Assert(t, qt.IsFalse(ok))

	u, ok := CheckedDiv(uint8(255), uint8(255))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(u, uint8(1)))

	_, ok = CheckedDiv(1e308, 1e-10)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestSatAdd(t *testing.T) {
	qt.Assert(t, qt.Equals(SatAdd(int64(math.MaxInt64), 1), int64(math.MaxInt64)))
	qt.Assert(t, qt.Equals(SatAdd(int64(math.MinInt64), -1), int64(math.MinInt64)))
	qt.Assert(t, qt.Equals(SatAdd(int64(1), 2), int64(3)))
	qt.Assert(t, qt.Equals(SatAdd(uint8(250), 10), uint8(255)))
	qt.Assert(t, qt.Equals(SatAdd(math.MaxFloat64, math.MaxFloat64), math.MaxFloat64))
	qt.Assert(t, qt.Equals(SatAdd(-math.MaxFloat64, -math.MaxFloat64), -math.MaxFloat64))
}

func TestSatSub(t *testing.T) {
	qt.Assert(t, qt.Equals(SatSub(uint8(3), 5), uint8(0)))
	qt.Assert(t, qt.Equals(SatSub(int64(math.MinInt64), 1), int64(math.MinInt64)))
	qt.Assert(t, qt.Equals(SatSub(int64(math.MaxInt64), -1), int64(math.MaxInt64)))
	qt.Assert(t, qt.Equals(SatSub(int64(10), 4), int64(6)))
}

func TestSatMul(t *testing.T) {
	qt.Assert(t, qt.Equals(SatMul(int64(math.MaxInt64), 2), int64(math.MaxInt64)))
	qt.Assert(t, qt.Equals(SatMul(int64(math.MaxInt64), -2), int64(math.MinInt64)))
	qt.Assert(t, qt.Equals(SatMul(int64(math.MinInt64), -1), int64(math.MaxInt64)))
	qt.Assert(t, qt.Equals(SatMul(int64(-3), 4), int64(-12)))
	qt.Assert(t, qt.Equals(SatMul(uint64(1<<32), uint64(1<<33)), uint64(math.MaxUint64)))
	qt.Assert(t, qt.Equals(SatMul(1e200, 1e200), math.MaxFloat64))
	qt.Assert(t, qt.Equals(SatMul(1e200, -1e200), -math.MaxFloat64))
}

func TestSatNeg(t *testing.T) {
	qt.Assert(t, qt.Equals(SatNeg(int64(math.MinInt64)), int64(math.MaxInt64)))
	qt.Assert(t, qt.Equals(SatNeg(int64(5)), int64(-5)))
	qt.Assert(t, qt.Equals(SatNeg(uint16(9)), uint16(0)))
	qt.Assert(t, qt.Equals(SatNeg(uint16(0)), uint16(0)))
	qt.Assert(t, qt.Equals(SatNeg(-1.5), 1.5))
}

// Saturating int64 arithmetic must agree with exact big.Int arithmetic
// clamped to the int64 range.
func TestSatAgainstBigReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lo := big.NewInt(math.MinInt64)
	hi := big.NewInt(math.MaxInt64)

	clamp := func(z *big.Int) int64 {
		if z.Cmp(lo) < 0 {
			return math.MinInt64
		}
		if z.Cmp(hi) > 0 {
			return math.MaxInt64
		}
		return z.Int64()
	}

	for i := 0; i < 2000; i++ {
		a := rng.Uint64()
		b := rng.Uint64()
		x, y := int64(a), int64(b)
		bx, by := big.NewInt(x), big.NewInt(y)

		var z big.Int
		qt.Assert(t, qt.Equals(SatAdd(x, y), clamp(z.Add(bx, by))),
			qt.Commentf("SatAdd(%d, %d)", x, y))
		qt.Assert(t, qt.Equals(SatSub(x, y), clamp(z.Sub(bx, by))),
			qt.Commentf("SatSub(%d, %d)", x, y))
		qt.Assert(t, qt.Equals(SatMul(x, y), clamp(z.Mul(bx, by))),
			qt.Commentf("SatMul(%d, %d)", x, y))
	}
}

// Checked int64 arithmetic must agree with big.Int where the exact result
// is representable and fail exactly where it is not.
func TestCheckedAgainstBigReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lo := big.NewInt(math.MinInt64)
	hi := big.NewInt(math.MaxInt64)

	for i := 0; i < 2000; i++ {
		x, y := int64(rng.Uint64()), int64(rng.Uint64())
		bx, by := big.NewInt(x), big.NewInt(y)

		var z big.Int
		z.Mul(bx, by)
		want := z.Cmp(lo) >= 0 && z.Cmp(hi) <= 0
		got, ok := CheckedMul(x, y)
		qt.Assert(t, qt.Equals(ok, want), qt.Commentf("CheckedMul(%d, %d)", x, y))
		if ok {
			qt.Assert(t, qt.Equals(got, z.Int64()))
		}
	}
}
