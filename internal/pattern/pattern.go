// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package pattern holds the fixed names and the rewrite table of the qgetenv check.
package pattern

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

const (
	// SourceFunction is the name of the function whose result is inspected.
	SourceFunction = "Qgetenv"

	// TargetType is the name of the type returned by [SourceFunction].
	TargetType = "QByteArray"
)

// Pattern describes the rewrite of SourceFunction(name).Method().
type Pattern struct {
	// Method is the name of the method called on the result of [SourceFunction].
	Method string

	// Replacement is the name of the function to call instead.
	Replacement string

	// Explanation is the human-readable reason for the diagnostic.
	Explanation string

	// Negate is true when the replacement yields the negated result.
	Negate bool
}

// Message returns the diagnostic message for this pattern.
func (p Pattern) Message() string {
	return p.Explanation + " Use " + p.Suggestion() + "() instead"
}

// Suggestion returns the suggested replacement expression prefix.
func (p Pattern) Suggestion() string {
	if p.Negate {
		return "!" + p.Replacement
	}

	return p.Replacement
}

var table = sync.OnceValue(func() map[string]Pattern {
	patterns := [...]Pattern{
		{
			Method:      "IsEmpty",
			Replacement: "QEnvironmentVariableIsEmpty",
			Explanation: SourceFunction + "().IsEmpty() allocates.",
		},
		{
			Method:      "IsNull",
			Replacement: "QEnvironmentVariableIsSet",
			Explanation: SourceFunction + "().IsNull() allocates.",
			Negate:      true,
		},
		{
			Method:      "ToInt",
			Replacement: "QEnvironmentVariableIntValue",
			Explanation: SourceFunction + "().ToInt() is slow.",
		},
	}

	m := make(map[string]Pattern, len(patterns))
	for _, p := range patterns {
		m[p.Method] = p
	}

	return m
})

// Lookup returns the pattern for a method name.
// Names are compared exactly, the lookup is case-sensitive.
func Lookup(method string) (Pattern, bool) {
	p, ok := table()[method]

	return p, ok
}

// All yields all patterns ordered by method name.
func All() iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		t := table()
		for _, method := range slices.Sorted(maps.Keys(t)) {
			if !yield(t[method]) {
				return
			}
		}
	}
}
