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

// Package refine attaches logical invariants to plain values.
//
// A predicate is a pure boolean function over a base type, expressed as a
// zero-sized type so that it participates in the type of the wrapped value:
// a Refined[int, Positive[int]] and a Refined[int, Negative[int]] are
// distinct types carrying distinct proofs. Once a value has been wrapped,
// the invariant is established and later code never re-checks it.
//
// There are four ways to construct a refined value, with distinct failure
// semantics:
//
//   - Must panics on violation. It is meant for constant inputs in
//     package-level initialization, where the panic surfaces before any
//     program logic runs, in the manner of regexp.MustCompile.
//   - New evaluates the predicate once and returns a *RefinementError on
//     violation.
//   - TryRefine is the non-raising form of New for call sites that branch.
//   - Trusted performs no check at all. It is a contract: the caller
//     asserts the predicate holds from an external proof. It exists so
//     that provably-preserving operations can skip a redundant check; it
//     is not an escape hatch for untrusted input.
//
// Arithmetic over refined values consults a Facts registry, a closed,
// immutable table of (predicate, operator) pairs for which the library or
// the integrator has established that the operator preserves the
// predicate. Registered pairs produce trusted results without
// re-validation; everything else re-checks. Facts are never inferred.
//
// All value-level arithmetic is overflow-checked and reports
// *OverflowError, a representation failure distinct from a logical
// *RefinementError. The companion package interval provides range
// predicates whose bounds propagate through arithmetic with saturating
// bound math.
package refine
