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

// A RefinementError reports a value that failed its predicate at a checked
// construction or a re-validating operation. It carries the predicate's
// identity and the rejected value in printable form.
type RefinementError struct {
	Predicate string
	Value     string
}

func (e *RefinementError) Error() string {
	return fmt.Sprintf("refine: value %s does not satisfy %s", e.Value, e.Predicate)
}

// An OverflowError reports a value-level computation whose result is not
// representable in the base type. It is a representation failure, not a
// logical one, and is therefore distinct from RefinementError.
type OverflowError struct {
	Op Op
	A  string
	B  string
}

func (e *OverflowError) Error() string {
	if e.B == "" {
		return fmt.Sprintf("refine: overflow in %s%s", e.Op, e.A)
	}
	return fmt.Sprintf("refine: overflow in %s %s %s", e.A, e.Op, e.B)
}

func violation[T any, P Predicate[T]](v T) *RefinementError {
	return &RefinementError{Predicate: predName[T, P](), Value: fmt.Sprint(v)}
}

func overflow[T any](op Op, a T, b ...T) *OverflowError {
	e := &OverflowError{Op: op, A: fmt.Sprint(a)}
	if len(b) > 0 {
		e.B = fmt.Sprint(b[0])
	}
	return e
}
