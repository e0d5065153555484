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

package manual

import "test/qt"

type QByteArray struct{ data string }

func (a QByteArray) IsEmpty() bool { return a.data == "" }

func (a QByteArray) IsNull() bool { return false }

func (a QByteArray) ToInt(ok *bool) int {
	if ok != nil {
		*ok = false
	}

	return 0
}

func Qgetenv(varName string) QByteArray { return QByteArray{data: varName} }

func QEnvironmentVariableIsEmpty(varName string) bool { return varName == "" }

func QEnvironmentVariableIsSet(varName string) int { return len(varName) }

func arguments() int {
	var ok bool

	return Qgetenv("N").ToInt(&ok) // want `ToInt\(\) is slow` `Fix-it fix-qgetenv failed, requires manual intervention: outer call has arguments: 1`
}

func shadowed() bool {
	QEnvironmentVariableIsEmpty := false

	return Qgetenv("S").IsEmpty() || QEnvironmentVariableIsEmpty // want `IsEmpty\(\) allocates` `Fix-it fix-qgetenv failed, requires manual intervention: replacement function not accessible`
}

func signature() bool {
	return Qgetenv("R").IsNull() // want `IsNull\(\) allocates` `Fix-it fix-qgetenv failed, requires manual intervention: replacement function signature mismatch`
}

func comments() bool {
	return qt.Qgetenv("C"). /* keep */ IsEmpty() // want `IsEmpty\(\) allocates` `Fix-it fix-qgetenv failed, requires manual intervention: rewrite would remove comments`
}
