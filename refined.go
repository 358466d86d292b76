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
)

// A Refined value owns one value of T for which P is known to hold.
// The zero Refined holds T's zero value; for predicates the zero value
// fails, obtain instances only through the constructors.
type Refined[T any, P Predicate[T]] struct {
	v T
}

// IsValid evaluates P against v without constructing anything.
func IsValid[T any, P Predicate[T]](v T) bool {
	var p P
	return p.Holds(v)
}

// Must returns v refined by P, panicking on violation. It is intended for
// constant inputs in package-level initialization, where the panic is the
// closest Go gets to failing the build.
func Must[T any, P Predicate[T]](v T) Refined[T, P] {
	if !IsValid[T, P](v) {
		panic(violation[T, P](v))
	}
	return Refined[T, P]{v: v}
}

// New returns v refined by P, or a *RefinementError if P does not hold.
func New[T any, P Predicate[T]](v T) (Refined[T, P], error) {
	if !IsValid[T, P](v) {
		return Refined[T, P]{}, violation[T, P](v)
	}
	return Refined[T, P]{v: v}, nil
}

// TryRefine is New without the error value, for call sites that branch.
func TryRefine[T any, P Predicate[T]](v T) (Refined[T, P], bool) {
	if !IsValid[T, P](v) {
		return Refined[T, P]{}, false
	}
	return Refined[T, P]{v: v}, true
}

// Trusted returns v refined by P without evaluating P. The caller asserts
// that P holds from an external proof; behavior is unspecified once that
// contract is violated. Never feed untrusted input through Trusted.
func Trusted[T any, P Predicate[T]](v T) Refined[T, P] {
	return Refined[T, P]{v: v}
}

// Get returns the underlying value.
func (r Refined[T, P]) Get() T { return r.v }

// String renders the underlying value with its own formatting; the
// predicate leaves no trace in the output.
func (r Refined[T, P]) String() string { return fmt.Sprint(r.v) }

// Equal, Compare and their *Value forms delegate to the base type and
// ignore the predicate tag.

func Equal[T comparable, P Predicate[T]](a, b Refined[T, P]) bool {
	return a.v == b.v
}

func EqualValue[T comparable, P Predicate[T]](a Refined[T, P], v T) bool {
	return a.v == v
}

func Compare[T cmp.Ordered, P Predicate[T]](a, b Refined[T, P]) int {
	return cmp.Compare(a.v, b.v)
}

func CompareValue[T cmp.Ordered, P Predicate[T]](a Refined[T, P], v T) int {
	return cmp.Compare(a.v, v)
}
