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

import . "test/qt"

func dotImport() (bool, int) {
	return Qgetenv("DOT").IsEmpty(), Qgetenv("DOT").ToInt() // want `IsEmpty\(\) allocates` `ToInt\(\) is slow`
}

func dotImportNull() bool {
	if Qgetenv("DOT").IsNull() { // want `Use !QEnvironmentVariableIsSet\(\) instead`
		return false
	}

	return true
}
