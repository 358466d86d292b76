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

// Op is an arithmetic operator, used as the second half of a fact key and
// in overflow diagnostics.
type Op uint8

const (
	NoOp Op = iota
	AddOp
	SubtractOp
	MultiplyOp
	QuotientOp
	RemainderOp
	NegateOp
)

var opStrings = map[Op]string{
	NoOp:        "",
	AddOp:       "+",
	SubtractOp:  "-",
	MultiplyOp:  "*",
	QuotientOp:  "/",
	RemainderOp: "%",
	NegateOp:    "-",
}

func (op Op) String() string {
	if s, ok := opStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ParseOp maps an operator name to its Op. Both the symbol and a word form
// are accepted; the word forms are what fact files use.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+", "add":
		return AddOp, nil
	case "-", "sub":
		return SubtractOp, nil
	case "*", "mul":
		return MultiplyOp, nil
	case "/", "div":
		return QuotientOp, nil
	case "%", "mod":
		return RemainderOp, nil
	case "neg":
		return NegateOp, nil
	}
	return NoOp, fmt.Errorf("refine: unknown operator %q", s)
}
