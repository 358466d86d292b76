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

// Package cmd implements the refine command line tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// New returns the root refine command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine",
		Short: "refine evaluates predicates and interval bounds",
		Long: `refine is a companion tool for the refine library.

It evaluates the builtin predicates against literal values, derives the
interval bounds produced by arithmetic on spans, and prints the
preservation fact registry, optionally extended from a fact file.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newCheckCmd(),
		newSpanCmd(),
		newFactsCmd(),
	)
	return cmd
}

// Main runs the root command and returns the process exit code. It exists
// so tests can run the tool in-process.
func Main() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "refine:", err)
		return 1
	}
	return 0
}
