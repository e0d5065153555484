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

// Package chain extracts chains of nested calls like f().g().h() from the syntax tree.
package chain

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/qgetenv/internal/astutil"
)

// MaxLength is the default maximum number of links collected by [Extract].
const MaxLength = 8

// Link is one call in a call chain.
type Link struct {
	// Call is the call expression.
	Call *ast.CallExpr

	// Callee is the statically resolved function or method, nil for calls of function
	// values, builtins and interface methods.
	Callee *types.Func

	// Recv is the receiver type of a method call, nil for function calls.
	Recv types.Type
}

// Method reports whether this link is a method call.
func (l Link) Method() bool {
	return l.Recv != nil
}

// Name returns the name of the called function or method, or the empty string
// when the callee is not statically known.
func (l Link) Name() string {
	if l.Callee == nil {
		return ""
	}

	return l.Callee.Name()
}

// Extract returns the chain of calls ending in call, outermost call first.
//
// For x.f().g() it returns the calls of g and f. Parentheses, explicit generic
// instantiations and type conversions between the links are transparent.
// At most limit links are collected, a limit <= 0 means [MaxLength].
func Extract(info *types.Info, call *ast.CallExpr, limit int) []Link {
	if limit <= 0 {
		limit = MaxLength
	}

	var links []Link

	for call != nil && len(links) < limit {
		links = append(links, newLink(info, call))
		call = next(info, call)
	}

	return links
}

// newLink resolves the callee of call.
func newLink(info *types.Info, call *ast.CallExpr) Link {
	link := Link{Call: call, Callee: typeutil.StaticCallee(info, call)}

	if sel, ok := astutil.CalleeExpr(info, call.Fun).(*ast.SelectorExpr); ok {
		if s, ok := info.Selections[sel]; ok && s.Kind() == types.MethodVal {
			link.Recv = s.Recv()
		}
	}

	return link
}

// next returns the call producing the receiver or function value of call, or nil.
func next(info *types.Info, call *ast.CallExpr) *ast.CallExpr {
	var expr ast.Expr

	switch fun := astutil.CalleeExpr(info, call.Fun).(type) {
	case *ast.SelectorExpr:
		if _, ok := info.Selections[fun]; !ok {
			return nil // qualified identifier
		}

		expr = fun.X

	case *ast.CallExpr:
		expr = fun

	default:
		return nil
	}

	return unwrap(info, expr)
}

// unwrap removes parentheses and type conversions from expr and returns the call
// expression below them, or nil.
func unwrap(info *types.Info, expr ast.Expr) *ast.CallExpr {
	for {
		call, ok := ast.Unparen(expr).(*ast.CallExpr)
		if !ok {
			return nil
		}

		if !astutil.IsConversion(info, call) || len(call.Args) != 1 {
			return call
		}

		expr = call.Args[0]
	}
}
