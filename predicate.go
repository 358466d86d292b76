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

import "fmt"

// A Predicate is a pure, total boolean function over T. Implementations
// must be zero-sized value types whose zero value is usable: the library
// instantiates them with `var p P` and never carries predicate state.
// Purity matters; a predicate that consults external state breaks every
// proof derived from it.
type Predicate[T any] interface {
	Holds(T) bool
}

// A Tag names a predicate shape for use as a registry key and in
// diagnostics. Tags form an open set so integrators can register facts for
// their own predicates; composed predicates are untagged and therefore
// never preserved.
type Tag string

const (
	TagPositive    Tag = "positive"
	TagNegative    Tag = "negative"
	TagNonNegative Tag = "non-negative"
	TagNonPositive Tag = "non-positive"
	TagNonZero     Tag = "non-zero"
	TagZero        Tag = "zero"
	TagEven        Tag = "even"
	TagOdd         Tag = "odd"
	TagPowerOfTwo  Tag = "power-of-two"
	TagFinite      Tag = "finite"
	TagNormalized  Tag = "normalized"
	TagNonEmpty    Tag = "non-empty"
	TagEmpty       Tag = "empty"
	TagNonNil      Tag = "non-nil"
	TagNil         Tag = "nil"
	TagAlways      Tag = "always"
	TagNever       Tag = "never"
)

// Tagged is implemented by predicates with a stable identity.
type Tagged interface {
	Tag() Tag
}

// ZeroFree is implemented by predicates that no zero value can satisfy.
// Div and Mod require their divisor to be refined by a ZeroFree predicate,
// which makes division total over the base type.
type ZeroFree[T any] interface {
	Predicate[T]
	ExcludesZero()
}

// TagOf returns the tag of P, or the empty tag if P is untagged.
func TagOf[T any, P Predicate[T]]() Tag {
	var p P
	if t, ok := any(p).(Tagged); ok {
		return t.Tag()
	}
	return ""
}

// predName renders the identity of P for diagnostics: the tag when there
// is one, the Go type otherwise.
func predName[T any, P Predicate[T]]() string {
	var p P
	if t, ok := any(p).(Tagged); ok {
		return string(t.Tag())
	}
	return fmt.Sprintf("%T", p)
}
