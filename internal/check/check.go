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

// Package check implements the qgetenv check.
//
// The check reports calls like
//
//	Qgetenv("NAME").IsEmpty()
//
// that allocate a QByteArray only to inspect it, and suggests the dedicated
// environment variable functions instead:
//
//	QEnvironmentVariableIsEmpty("NAME")
package check

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/qgetenv/internal/astutil"
	"fillmore-labs.com/qgetenv/internal/chain"
	"fillmore-labs.com/qgetenv/internal/config"
	"fillmore-labs.com/qgetenv/internal/pattern"
	"fillmore-labs.com/qgetenv/internal/splice"
)

// Name is the stable name of the check.
const Name = "qgetenv"

// chainLimit is enough to distinguish chains of exactly two calls from longer ones.
const chainLimit = 3

// Reporter is the interface to the driver running the check.
type Reporter interface {
	// Enabled reports whether rewrites of a fix-it category should be attempted.
	Enabled(fixit config.Fixit) bool

	// Report emits a diagnostic.
	Report(d Diagnostic)

	// ReportUnfixable emits a notice that a rewrite of the fix-it category failed
	// and the code at pos needs to be fixed manually.
	ReportUnfixable(pos token.Pos, fixit config.Fixit, reason error)
}

// Diagnostic is a finding of the check.
type Diagnostic struct {
	// Pos and End delimit the reported call.
	Pos, End token.Pos

	// Message is the human-readable description.
	Message string

	// Plan records whether a rewrite was attempted and succeeded.
	Plan Plan

	// Edits holds the rewrite, if any.
	Edits []analysis.TextEdit
}

// Checker matches Qgetenv(...).Method() chains in one package.
//
// A Checker holds no state besides its immutable configuration and can be used
// for any number of [Checker.Visit] calls.
type Checker struct {
	// Info holds the type information of the package.
	Info *types.Info

	// Pkg is the type-checked package.
	Pkg *types.Package

	// Reporter receives the results.
	Reporter Reporter
}

// Visit checks a single node of a file. Nodes other than method calls are ignored.
func (c Checker) Visit(file astutil.CurrentFile, node ast.Node) {
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return
	}

	links := chain.Extract(c.Info, call, chainLimit)
	if !isTargetMethod(links[0]) || len(links) != 2 {
		return
	}

	outer, inner := links[0], links[1]
	if !isSourceFunction(inner.Callee) {
		return
	}

	p, ok := pattern.Lookup(outer.Name())
	if !ok {
		return
	}

	d := Diagnostic{
		Pos:     call.Pos(),
		End:     call.End(),
		Message: p.Message(),
	}

	if c.Reporter.Enabled(config.FixitAll) {
		s := splice.Splicer{Info: c.Info, Pkg: c.Pkg, File: file}

		edit, err := s.TwoCallsIntoOne(splice.Request{
			Inner:       inner,
			Outer:       outer,
			Replacement: p.Replacement,
			Negate:      p.Negate,
		})
		if err != nil {
			d.Plan = PlanManual
			c.Reporter.ReportUnfixable(call.Pos(), config.FixitAll, err)
		} else {
			d.Plan = PlanRewrite
			d.Edits = []analysis.TextEdit{edit}
		}
	}

	c.Reporter.Report(d)
}

// isTargetMethod reports whether link is a statically resolved method call and
// the method is declared on the target type.
func isTargetMethod(link chain.Link) bool {
	// Method expressions T.M(x), qualified identifiers and interface methods have no static receiver.
	if !link.Method() || link.Callee == nil {
		return false
	}

	recv := link.Callee.Signature().Recv()
	if recv == nil || types.IsInterface(recv.Type()) {
		return false
	}

	return receiverName(recv.Type()) == pattern.TargetType
}

// receiverName returns the name of the named base type of a receiver.
func receiverName(t types.Type) string {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return ""
	}

	return named.Obj().Name()
}

// isSourceFunction reports whether fn is a package-level function named like the source function.
func isSourceFunction(fn *types.Func) bool {
	return fn != nil && fn.Signature().Recv() == nil && fn.Name() == pattern.SourceFunction
}
