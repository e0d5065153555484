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

package nofix

import "test/qt"

func port() int {
	if qt.Qgetenv("PORT").IsNull() { // want `Use !QEnvironmentVariableIsSet\(\) instead`
		return 8080
	}

	return qt.Qgetenv("PORT").ToInt() // want `Use QEnvironmentVariableIntValue\(\) instead`
}

func comment() bool {
	return qt.Qgetenv("C"). /* no fix attempted */ IsEmpty() // want `Use QEnvironmentVariableIsEmpty\(\) instead`
}
