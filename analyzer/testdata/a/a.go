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

package a

import (
	"fmt"
	"strings"

	"test/qt"
)

func debug() {
	if qt.Qgetenv("DEBUG").IsEmpty() { // want `Qgetenv\(\)\.IsEmpty\(\) allocates\. Use QEnvironmentVariableIsEmpty\(\) instead`
		return
	}

	fmt.Println("debug")
}

func unset() bool {
	return qt.Qgetenv("HOME").IsNull() // want `Qgetenv\(\)\.IsNull\(\) allocates\. Use !QEnvironmentVariableIsSet\(\) instead`
}

func set() bool {
	return !qt.Qgetenv("HOME").IsNull() // want `Use !QEnvironmentVariableIsSet\(\) instead`
}

func level(name string) int {
	return qt.Qgetenv("LEVEL_"+strings.ToUpper(name)).ToInt() + 1 // want `Qgetenv\(\)\.ToInt\(\) is slow\. Use QEnvironmentVariableIntValue\(\) instead`
}

func parens() bool {
	a := (qt.Qgetenv("A")).IsEmpty() // want `IsEmpty\(\) allocates`
	b := (qt.Qgetenv)("B").IsEmpty() // want `IsEmpty\(\) allocates`

	return a && b
}

func multiline() int {
	return qt.Qgetenv( // want `ToInt\(\) is slow`
		"MULTI",
	).ToInt()
}

func unrelated() {
	_ = qt.Qgetenv("BASE").ToIntBase(16)
	_ = qt.Qgetenv("TRIM").Trimmed().IsEmpty()

	v := qt.Qgetenv("VAR")
	_ = v.IsEmpty()

	f := qt.Qgetenv("VALUE").IsEmpty
	_ = f()

	var e interface{ IsEmpty() bool } = qt.Qgetenv("IFACE")
	_ = e.IsEmpty()
}

func suppressed() {
	_ = qt.Qgetenv("QUIET").IsEmpty() //nolint:qgetenv
	_ = qt.Qgetenv(/* name */ "QUIET").IsEmpty() //nolint:qgetenv
}

//nolint:qgetenv
func suppressedFunc() {
	_ = qt.Qgetenv("QUIET").IsEmpty()
}
