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

package refine_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/yotto3s/refine"
)

func TestDefaults(t *testing.T) {
	reg := refine.Defaults()
	want := []refine.Fact{
		{Tag: refine.TagNonNegative, Op: refine.AddOp},
		{Tag: refine.TagNonNegative, Op: refine.MultiplyOp},
		{Tag: refine.TagPositive, Op: refine.AddOp},
		{Tag: refine.TagPositive, Op: refine.MultiplyOp},
	}
	if diff := cmp.Diff(want, reg.All()); diff != "" {
		t.Errorf("default facts mismatch (-want +got):\n%s", diff)
	}

	qt.Assert(t, qt.IsTrue(reg.Preserved(refine.TagPositive, refine.AddOp)))
	qt.Assert(t, qt.IsTrue(reg.Preserved(refine.TagNonNegative, refine.MultiplyOp)))
	qt.Assert(t, qt.IsFalse(reg.Preserved(refine.TagNegative, refine.AddOp)))
	qt.Assert(t, qt.IsFalse(reg.Preserved(refine.TagEven, refine.AddOp)))
	qt.Assert(t, qt.IsFalse(reg.Preserved(refine.TagPositive, refine.SubtractOp)))
}

func TestFactsUntagged(t *testing.T) {
	reg := refine.Defaults()
	qt.Assert(t, qt.IsFalse(reg.Preserved("", refine.AddOp)))

	var nilReg *refine.Facts
	qt.Assert(t, qt.IsFalse(nilReg.Preserved(refine.TagPositive, refine.AddOp)))
}

func TestWith(t *testing.T) {
	base := refine.Defaults()
	ext := base.With(
		refine.Fact{Tag: refine.TagEven, Op: refine.AddOp},
		refine.Fact{Tag: refine.TagEven, Op: refine.MultiplyOp},
	)

	qt.Assert(t, qt.IsTrue(ext.Preserved(refine.TagEven, refine.AddOp)))
	qt.Assert(t, qt.IsTrue(ext.Preserved(refine.TagEven, refine.MultiplyOp)))
	qt.Assert(t, qt.IsTrue(ext.Preserved(refine.TagPositive, refine.AddOp)))

	// The base registry is unchanged.
	qt.Assert(t, qt.IsFalse(base.Preserved(refine.TagEven, refine.AddOp)))
}

func TestNewFactsRejectsBadOps(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		refine.NewFacts(refine.Fact{Tag: refine.TagPositive, Op: refine.SubtractOp})
	}, `refine: operator - admits no preservation facts`))

	qt.Assert(t, qt.PanicMatches(func() {
		refine.NewFacts(refine.Fact{Tag: refine.TagPositive, Op: refine.QuotientOp})
	}, `refine: operator / admits no preservation facts`))

	qt.Assert(t, qt.PanicMatches(func() {
		refine.NewFacts(refine.Fact{Tag: "", Op: refine.AddOp})
	}, `refine: preservation fact for untagged predicate`))
}

// TestFactSoundness spot-checks that every registered default fact is
// actually true of int64 arithmetic over a value sweep.
func TestFactSoundness(t *testing.T) {
	holds := map[refine.Tag]func(int64) bool{
		refine.TagPositive:    refine.IsValid[int64, refine.Positive[int64]],
		refine.TagNonNegative: refine.IsValid[int64, refine.NonNegative[int64]],
	}
	vals := []int64{0, 1, 2, 3, 7, 100, 1 << 20}
	for _, f := range refine.Defaults().All() {
		h := holds[f.Tag]
		qt.Assert(t, qt.IsNotNil(h), qt.Commentf("no checker for tag %s", f.Tag))
		for _, a := range vals {
			for _, b := range vals {
				if !h(a) || !h(b) {
					continue
				}
				var r int64
				switch f.Op {
				case refine.AddOp:
					r = a + b
				case refine.MultiplyOp:
					r = a * b
				}
				qt.Assert(t, qt.IsTrue(h(r)), qt.Commentf("%s %s: a=%d b=%d r=%d", f.Tag, f.Op, a, b, r))
			}
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want refine.Op
		ok   bool
	}{
		{"+", refine.AddOp, true},
		{"add", refine.AddOp, true},
		{"*", refine.MultiplyOp, true},
		{"mul", refine.MultiplyOp, true},
		{"-", refine.SubtractOp, true},
		{"sub", refine.SubtractOp, true},
		{"/", refine.QuotientOp, true},
		{"div", refine.QuotientOp, true},
		{"%", refine.RemainderOp, true},
		{"mod", refine.RemainderOp, true},
		{"neg", refine.NegateOp, true},
		{"", 0, false},
		{"pow", 0, false},
	}
	for _, tc := range tests {
		got, err := refine.ParseOp(tc.in)
		if !tc.ok {
			qt.Assert(t, qt.ErrorMatches(err, `refine: unknown operator .*`), qt.Commentf("in=%q", tc.in))
			continue
		}
		qt.Assert(t, qt.IsNil(err), qt.Commentf("in=%q", tc.in))
		qt.Assert(t, qt.Equals(got, tc.want), qt.Commentf("in=%q", tc.in))
	}
}
