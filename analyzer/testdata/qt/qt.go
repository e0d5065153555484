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

// Package qt is a minimal binding of the Qt environment variable API.
package qt

import (
	"os"
	"strconv"
	"strings"
)

type QByteArray struct {
	data []byte
	null bool
}

func (a QByteArray) IsEmpty() bool { return len(a.data) == 0 }

func (a QByteArray) IsNull() bool { return a.null }

func (a QByteArray) ToInt() int { return a.ToIntBase(10) }

func (a QByteArray) ToIntBase(base int) int {
	i, err := strconv.ParseInt(strings.TrimSpace(string(a.data)), base, strconv.IntSize)
	if err != nil {
		return 0
	}

	return int(i)
}

func (a QByteArray) Trimmed() QByteArray {
	return QByteArray{data: []byte(strings.TrimSpace(string(a.data))), null: a.null}
}

func Qgetenv(varName string) QByteArray {
	value, ok := os.LookupEnv(varName)

	return QByteArray{data: []byte(value), null: !ok}
}

func QEnvironmentVariableIsEmpty(varName string) bool { return os.Getenv(varName) == "" }

func QEnvironmentVariableIsSet(varName string) bool {
	_, ok := os.LookupEnv(varName)

	return ok
}

func QEnvironmentVariableIntValue(varName string) int { return Qgetenv(varName).ToInt() }
