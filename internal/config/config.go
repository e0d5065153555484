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

package config

// Fixit represents the fix-it categories offered by the check.
type Fixit uint8

//go:generate go tool stringer -type Fixit -linecomment
const (
	// FixitAll enables all automatic rewrites of the qgetenv check.
	FixitAll Fixit = 1 << iota // fix-qgetenv
)

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// Fixits is the set of enabled fix-it categories.
type Fixits = BitMask[Fixit]

// Behaviors is the set of enabled behavioral options.
type Behaviors = BitMask[Behavior]

// DefaultFixits returns the fix-it categories enabled by default.
func DefaultFixits() Fixits {
	return NewBitMask(FixitAll)
}

// DefaultBehavior returns the behavioral options enabled by default.
func DefaultBehavior() Behaviors {
	return NewBitMask[Behavior]()
}
