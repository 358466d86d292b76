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

package interval

// Size predicates apply a named span to the length of a container-like
// value instead of to the value itself. They satisfy the same predicate
// contract, so refine.Refined, TryRefine and IsValid work against them
// unmodified.

// StringLen holds for strings whose length lies in the named span.
type StringLen[S ~string, B Spanner[int]] struct{}

func (StringLen[S, B]) Holds(v S) bool {
	var b B
	return b.Span().Contains(len(v))
}

// SliceLen holds for slices whose length lies in the named span.
type SliceLen[E any, B Spanner[int]] struct{}

func (SliceLen[E, B]) Holds(v []E) bool {
	var b B
	return b.Span().Contains(len(v))
}
