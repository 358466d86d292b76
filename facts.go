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
	"fmt"
	"slices"
)

// A Fact asserts that for all a, b satisfying the tagged predicate,
// Op(a, b) satisfies it as well. Facts are supplied, never inferred;
// registering one is a deliberate, auditable claim.
type Fact struct {
	Tag Tag
	Op  Op
}

// Facts is an immutable preservation registry. Lookups are pure; extension
// goes through With, which copies. A registry must be fully built before
// any operation consults it, which the package-level default guarantees by
// being constructed in a variable initializer.
type Facts struct {
	facts map[Fact]bool
}

// NewFacts builds a registry from the given facts. Only AddOp and
// MultiplyOp are registrable: the library treats every other operator as
// non-preserving by definition. A malformed fact is a programming error
// and panics.
func NewFacts(facts ...Fact) *Facts {
	f := &Facts{facts: make(map[Fact]bool, len(facts))}
	f.add(facts)
	return f
}

func (f *Facts) add(facts []Fact) {
	for _, fact := range facts {
		if fact.Op != AddOp && fact.Op != MultiplyOp {
			panic(fmt.Sprintf("refine: operator %s admits no preservation facts", fact.Op))
		}
		if fact.Tag == "" {
			panic("refine: preservation fact for untagged predicate")
		}
		f.facts[fact] = true
	}
}

// With returns a new registry extended by the given facts. The receiver is
// unchanged.
func (f *Facts) With(facts ...Fact) *Facts {
	n := &Facts{facts: make(map[Fact]bool, len(f.facts)+len(facts))}
	for k := range f.facts {
		n.facts[k] = true
	}
	n.add(facts)
	return n
}

// Preserved reports whether Op on two values satisfying the tagged
// predicate is known to satisfy it again. Untagged predicates are never
// preserved.
func (f *Facts) Preserved(t Tag, op Op) bool {
	if f == nil || t == "" {
		return false
	}
	return f.facts[Fact{Tag: t, Op: op}]
}

// All returns the registered facts, ordered for display.
func (f *Facts) All() []Fact {
	all := make([]Fact, 0, len(f.facts))
	for k := range f.facts {
		all = append(all, k)
	}
	slices.SortFunc(all, func(a, b Fact) int {
		if c := cmp.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return cmp.Compare(a.Op, b.Op)
	})
	return all
}

var defaultFacts = NewFacts(
	Fact{TagPositive, AddOp},
	Fact{TagPositive, MultiplyOp},
	Fact{TagNonNegative, AddOp},
	Fact{TagNonNegative, MultiplyOp},
)

// Defaults returns the registry of facts the library itself vouches for:
// sums and products of positive values are positive, likewise for
// non-negative values.
func Defaults() *Facts {
	return defaultFacts
}
