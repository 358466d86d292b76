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
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yotto3s/refine"
)

// The builtin predicates by name, over the widest kinds. Integer literals
// check against the int64 table, everything else against float64.
var intPredicates = map[string]func(int64) bool{
	"positive":     refine.IsValid[int64, refine.Positive[int64]],
	"negative":     refine.IsValid[int64, refine.Negative[int64]],
	"non-negative": refine.IsValid[int64, refine.NonNegative[int64]],
	"non-positive": refine.IsValid[int64, refine.NonPositive[int64]],
	"non-zero":     refine.IsValid[int64, refine.NonZero[int64]],
	"zero":         refine.IsValid[int64, refine.Zero[int64]],
	"even":         refine.IsValid[int64, refine.Even[int64]],
	"odd":          refine.IsValid[int64, refine.Odd[int64]],
	"power-of-two": refine.IsValid[int64, refine.PowerOfTwo[int64]],
	"normalized":   refine.IsValid[int64, refine.Normalized[int64]],
}

var floatPredicates = map[string]func(float64) bool{
	"positive":     refine.IsValid[float64, refine.Positive[float64]],
	"negative":     refine.IsValid[float64, refine.Negative[float64]],
	"non-negative": refine.IsValid[float64, refine.NonNegative[float64]],
	"non-positive": refine.IsValid[float64, refine.NonPositive[float64]],
	"non-zero":     refine.IsValid[float64, refine.NonZero[float64]],
	"zero":         refine.IsValid[float64, refine.Zero[float64]],
	"finite":       refine.IsValid[float64, refine.Finite[float64]],
	"normalized":   refine.IsValid[float64, refine.Normalized[float64]],
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <predicate> <value>",
		Short: "evaluate a builtin predicate against a value",
		Long: `check evaluates a builtin predicate against a literal value.

The value is parsed as an integer where possible and as a float
otherwise. The command exits non-zero when the predicate is violated.

Examples:

  $ refine check positive 42
  42: positive holds

  $ refine check even -- -3
  refine: value -3 does not satisfy even
`,
		Args: cobra.ExactArgs(2),
		RunE: runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, lit := args[0], args[1]

	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		p, ok := intPredicates[name]
		if !ok {
			// Predicates like finite only make sense for floats.
			if fp, ok := floatPredicates[name]; ok {
				p = func(v int64) bool { return fp(float64(v)) }
			} else {
				return fmt.Errorf("unknown predicate %q; have %s", name, predicateNames())
			}
		}
		return verdict(cmd, name, lit, p(i))
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as a number", lit)
	}
	p, ok := floatPredicates[name]
	if !ok {
		if _, isInt := intPredicates[name]; isInt {
			return fmt.Errorf("predicate %q applies to integers only", name)
		}
		return fmt.Errorf("unknown predicate %q; have %s", name, predicateNames())
	}
	return verdict(cmd, name, lit, p(f))
}

func verdict(cmd *cobra.Command, name, lit string, holds bool) error {
	if !holds {
		return fmt.Errorf("value %s does not satisfy %s", lit, name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s holds\n", lit, name)
	return nil
}

func predicateNames() string {
	seen := map[string]bool{}
	for n := range intPredicates {
		seen[n] = true
	}
	for n := range floatPredicates {
		seen[n] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
