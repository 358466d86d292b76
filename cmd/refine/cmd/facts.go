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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yotto3s/refine"
)

const flagFacts = "facts"

func newFactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "print the preservation fact registry",
		Long: `facts prints the (predicate, operator) pairs for which an operator
is known to preserve a predicate. The library defaults can be extended
with a YAML fact file:

  facts:
    - tag: even
      op: add

Only add and mul admit facts; every other operator re-checks by
definition.
`,
		Args: cobra.NoArgs,
		RunE: runFacts,
	}
	cmd.Flags().StringP(flagFacts, "f", "", "YAML file with additional facts")
	return cmd
}

type factsFile struct {
	Facts []struct {
		Tag string `yaml:"tag"`
		Op  string `yaml:"op"`
	} `yaml:"facts"`
}

func runFacts(cmd *cobra.Command, args []string) error {
	reg := refine.Defaults()

	if path, _ := cmd.Flags().GetString(flagFacts); path != "" {
		extra, err := loadFacts(path)
		if err != nil {
			return err
		}
		reg = reg.With(extra...)
	}

	w := cmd.OutOrStdout()
	for _, f := range reg.All() {
		fmt.Fprintf(w, "%s %s preserved\n", f.Tag, f.Op)
	}
	return nil
}

func loadFacts(path string) ([]refine.Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file factsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	facts := make([]refine.Fact, 0, len(file.Facts))
	for _, f := range file.Facts {
		op, err := refine.ParseOp(f.Op)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		if op != refine.AddOp && op != refine.MultiplyOp {
			return nil, fmt.Errorf("%s: operator %q admits no preservation facts", path, f.Op)
		}
		if f.Tag == "" {
			return nil, fmt.Errorf("%s: fact with empty tag", path)
		}
		facts = append(facts, refine.Fact{Tag: refine.Tag(f.Tag), Op: op})
	}
	return facts, nil
}
