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

package check

import (
	"fillmore-labs.com/qgetenv/internal/config"
	"fillmore-labs.com/qgetenv/internal/pattern"
)

// FixitInfo describes a fix-it category offered by the check.
type FixitInfo struct {
	// Fixit is the category.
	Fixit config.Fixit

	// Doc is the human-readable description, used for command line flags.
	Doc string
}

// FlagName returns the command line flag name of the category.
func (f FixitInfo) FlagName() string {
	return f.Fixit.String()
}

// Fixits returns the fix-it categories offered by the check.
func Fixits() []FixitInfo {
	return []FixitInfo{
		{
			Fixit: config.FixitAll,
			Doc:   "suggest rewrites of " + pattern.SourceFunction + "(...) calls to dedicated environment variable functions",
		},
	}
}
