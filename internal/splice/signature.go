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

package splice

import (
	"fmt"
	"go/ast"
	"go/types"
)

// calleeIdent returns the identifier naming the called function of a plain call
// f(...) or a qualified call pkg.f(...).
func calleeIdent(fun ast.Expr) (*ast.Ident, bool) {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f, true

	case *ast.SelectorExpr:
		if _, ok := ast.Unparen(f.X).(*ast.Ident); !ok {
			return nil, false
		}

		return f.Sel, true

	default:
		return nil, false
	}
}

// checkSignature verifies that replacement accepts the arguments of source and yields
// the result of method.
func checkSignature(replacement, source, method *types.Func, negate bool) error {
	if method == nil {
		return fmt.Errorf("%w: unknown method", ErrSignature)
	}

	rs, ss, ms := replacement.Signature(), source.Signature(), method.Signature()

	switch {
	case rs.TypeParams().Len() > 0 || ss.TypeParams().Len() > 0:
		return fmt.Errorf("%w: generic function", ErrSignature)

	case rs.Variadic() != ss.Variadic() || !types.Identical(rs.Params(), ss.Params()):
		return fmt.Errorf("%w: parameters %s, expected %s", ErrSignature, rs.Params(), ss.Params())

	case !types.Identical(rs.Results(), ms.Results()):
		return fmt.Errorf("%w: results %s, expected %s", ErrSignature, rs.Results(), ms.Results())

	case negate && !isBool(rs.Results()):
		return fmt.Errorf("%w: can not negate %s", ErrSignature, rs.Results())
	}

	return nil
}

// isBool reports whether results is the predeclared bool, which has no methods.
func isBool(results *types.Tuple) bool {
	return results.Len() == 1 && types.Identical(results.At(0).Type(), types.Typ[types.Bool])
}
