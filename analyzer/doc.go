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

// Package analyzer implements the qgetenv static analysis pass.
//
// # Overview
//
// Qgetenv copies the value of an environment variable into a newly allocated
// QByteArray. When the result is only used to check whether the variable is empty
// or set, or to convert it to an integer, the dedicated functions of the Qt
// environment API avoid the allocation.
//
// # Example
//
// Before:
//
//	if qt.Qgetenv("DEBUG").IsEmpty() {
//	    return
//	}
//	level := qt.Qgetenv("LEVEL").ToInt()
//
// After applying qgetenv's suggested fixes:
//
//	if qt.QEnvironmentVariableIsEmpty("DEBUG") {
//	    return
//	}
//	level := qt.QEnvironmentVariableIntValue("LEVEL")
//
// # Detected Calls
//
//   - Qgetenv(name).IsEmpty() → QEnvironmentVariableIsEmpty(name)
//   - Qgetenv(name).IsNull() → !QEnvironmentVariableIsSet(name)
//   - Qgetenv(name).ToInt() → QEnvironmentVariableIntValue(name)
//
// Suggested fixes are only offered when the rewrite is known to be safe. Otherwise
// an additional diagnostic of category fix-qgetenv asks for a manual fix.
package analyzer
