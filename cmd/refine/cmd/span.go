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

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yotto3s/refine/interval"
)

func newSpanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span <op> <lo>,<hi> [<lo>,<hi>]",
		Short: "derive the interval produced by arithmetic on spans",
		Long: `span prints the interval derived for an arithmetic operation on
int64 spans. Bound math saturates: a bound past the representable range
clamps to the type limit instead of failing.

The operations are add, sub and mul over two spans, and neg over one.

Examples:

  $ refine span mul 0,10 0,10
  [0,100]

  $ refine span sub 0,10 0,10
  [-10,10]
`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runSpan,
	}
	return cmd
}

func runSpan(cmd *cobra.Command, args []string) error {
	op := args[0]
	a, err := parseSpan(args[1])
	if err != nil {
		return err
	}

	var out interval.Span[int64]
	switch op {
	case "neg":
		if len(args) != 2 {
			return fmt.Errorf("neg takes a single span")
		}
		out = interval.NegSpan(a)

	case "add", "sub", "mul":
		if len(args) != 3 {
			return fmt.Errorf("%s takes two spans", op)
		}
		b, err := parseSpan(args[2])
		if err != nil {
			return err
		}
		switch op {
		case "add":
			out = interval.AddSpans(a, b)
		case "sub":
			out = interval.SubSpans(a, b)
		case "mul":
			out = interval.MulSpans(a, b)
		}

	default:
		return fmt.Errorf("unknown operation %q; have add, sub, mul, neg", op)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseSpan(s string) (interval.Span[int64], error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return interval.Span[int64]{}, fmt.Errorf("span %q is not of the form lo,hi", s)
	}
	l, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return interval.Span[int64]{}, fmt.Errorf("bad lower bound %q", lo)
	}
	h, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return interval.Span[int64]{}, fmt.Errorf("bad upper bound %q", hi)
	}
	sp := interval.Of(l, h)
	if !sp.IsWellFormed() {
		return interval.Span[int64]{}, fmt.Errorf("span %s has lo > hi", sp)
	}
	return sp, nil
}
