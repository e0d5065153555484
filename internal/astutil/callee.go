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

package astutil

import (
	"go/ast"
	"go/types"
)

// CalleeExpr returns the function expression of a call with parentheses and
// explicit generic instantiations removed.
func CalleeExpr(info *types.Info, fun ast.Expr) ast.Expr {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		if tv, ok := info.Types[f.Index]; ok && tv.IsType() {
			return ast.Unparen(f.X)
		}

		return f

	case *ast.IndexListExpr:
		return ast.Unparen(f.X)

	default:
		return f
	}
}

// IsConversion reports whether call is a type conversion T(x).
func IsConversion(info *types.Info, call *ast.CallExpr) bool {
	tv, ok := info.Types[call.Fun]

	return ok && tv.IsType()
}
