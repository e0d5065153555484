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

// Package splice collapses a call on the result of another call into a single call.
//
// The rewrite is purely textual: the inner call is kept verbatim except for the
// callee name, the outer selector and argument list are dropped. Every condition
// that could make the result differ from the intended program fails the splice
// instead of producing a best-effort edit.
package splice

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/qgetenv/internal/astutil"
	"fillmore-labs.com/qgetenv/internal/chain"
)

var (
	// ErrArguments is returned when the outer call has arguments that would be discarded.
	ErrArguments = errors.New("outer call has arguments")

	// ErrInvalidRange is returned when the calls have no usable source range in the current file.
	ErrInvalidRange = errors.New("invalid source range")

	// ErrRemapped is returned when a //line directive remaps the source range.
	ErrRemapped = errors.New("source range remapped by line directive")

	// ErrCallee is returned when the inner callee is not a plain or qualified identifier.
	ErrCallee = errors.New("callee is not an identifier")

	// ErrComments is returned when the rewrite would delete comments.
	ErrComments = errors.New("rewrite would remove comments")

	// ErrUnresolved is returned when the replacement function is not accessible at the call site.
	ErrUnresolved = errors.New("replacement function not accessible")

	// ErrSignature is returned when the replacement function has an incompatible signature.
	ErrSignature = errors.New("replacement function signature mismatch")

	// ErrSource is returned when the source text can not be read.
	ErrSource = errors.New("source not available")

	// ErrSourceMismatch is returned when the source text does not match the syntax tree.
	ErrSourceMismatch = errors.New("source does not match syntax tree")
)

// Splicer rewrites call chains in one file.
type Splicer struct {
	// Info holds the type information for the file.
	Info *types.Info

	// Pkg is the package of the file.
	Pkg *types.Package

	// File is the file containing the calls.
	File astutil.CurrentFile
}

// Request describes the calls to combine and the replacement function.
type Request struct {
	// Inner is the call of the source function.
	Inner chain.Link

	// Outer is the method call on the result of Inner.
	Outer chain.Link

	// Replacement is the name of the function replacing both calls.
	Replacement string

	// Negate prefixes the replacement call with a logical not.
	Negate bool
}

// TwoCallsIntoOne returns a text edit replacing the outer call with a single call of
// the replacement function, keeping the qualifier and arguments of the inner call.
//
// An error wrapping one of the package's sentinel errors is returned when the edit
// can not be proven safe.
func (s Splicer) TwoCallsIntoOne(r Request) (analysis.TextEdit, error) {
	inner, outer := r.Inner.Call, r.Outer.Call

	if len(outer.Args) > 0 {
		return analysis.TextEdit{}, fmt.Errorf("%w: %d", ErrArguments, len(outer.Args))
	}

	if err := s.checkRange(inner, outer); err != nil {
		return analysis.TextEdit{}, err
	}

	ident, ok := calleeIdent(inner.Fun)
	if !ok {
		return analysis.TextEdit{}, ErrCallee
	}

	if err := s.checkReplacement(r, ident); err != nil {
		return analysis.TextEdit{}, err
	}

	content, err := s.File.Content()
	if err != nil {
		return analysis.TextEdit{}, fmt.Errorf("%w: %w", ErrSource, err)
	}

	if len(content) != s.File.Size() {
		return analysis.TextEdit{}, fmt.Errorf("%w: size %d, expected %d", ErrSourceMismatch, len(content), s.File.Size())
	}

	var (
		start    = s.File.Offset(inner.Pos())
		namePos  = s.File.Offset(ident.Pos())
		nameEnd  = s.File.Offset(ident.End())
		innerEnd = s.File.Offset(inner.End())
	)

	if name := string(content[namePos:nameEnd]); name != ident.Name {
		return analysis.TextEdit{}, fmt.Errorf("%w: found %q, expected %q", ErrSourceMismatch, name, ident.Name)
	}

	newText := make([]byte, 0, 1+innerEnd-start+len(r.Replacement)-len(ident.Name))
	if r.Negate {
		newText = append(newText, '!')
	}

	newText = append(newText, content[start:namePos]...)
	newText = append(newText, r.Replacement...)
	newText = append(newText, content[nameEnd:innerEnd]...)

	return analysis.TextEdit{Pos: outer.Pos(), End: outer.End(), NewText: newText}, nil
}

// checkRange verifies that inner lies inside outer, both in the current file without
// remapping, and that only syntax without comments is discarded.
func (s Splicer) checkRange(inner, outer *ast.CallExpr) error {
	pos, end := outer.Pos(), outer.End()

	switch {
	case !s.File.Contains(pos) || !s.File.Contains(end),
		!s.File.Contains(inner.Pos()) || !s.File.Contains(inner.End()),
		inner.Pos() < pos || end < inner.End():
		return ErrInvalidRange

	case s.File.Remapped(pos) || s.File.Remapped(end):
		return ErrRemapped

	case s.File.HasComment(pos, inner.Pos()) || s.File.HasComment(inner.End(), end):
		return ErrComments
	}

	return nil
}

// checkReplacement verifies that the replacement name resolves at the call site to a
// package-level function of the source function's package with a compatible signature.
func (s Splicer) checkReplacement(r Request, ident *ast.Ident) error {
	source := r.Inner.Callee
	if source == nil || source.Pkg() == nil {
		return fmt.Errorf("%w: unknown source function", ErrUnresolved)
	}

	if use, ok := s.Info.Uses[ident]; !ok || use != source {
		return fmt.Errorf("%w: callee %s not resolved", ErrUnresolved, ident.Name)
	}

	var obj types.Object

	switch fun := ast.Unparen(r.Inner.Call.Fun).(type) {
	case *ast.Ident:
		scope := s.Pkg.Scope().Innermost(ident.Pos())
		if scope == nil {
			return fmt.Errorf("%w: no scope for %s", ErrUnresolved, r.Replacement)
		}

		_, obj = scope.LookupParent(r.Replacement, ident.Pos())

	case *ast.SelectorExpr:
		if source.Pkg() != s.Pkg && !token.IsExported(r.Replacement) {
			return fmt.Errorf("%w: %s is not exported", ErrUnresolved, r.Replacement)
		}

		obj = source.Pkg().Scope().Lookup(r.Replacement)

	default:
		return fmt.Errorf("%w: unexpected callee %T", ErrCallee, fun)
	}

	replacement, ok := obj.(*types.Func)
	if !ok || replacement.Pkg() != source.Pkg() || replacement.Parent() != source.Pkg().Scope() {
		return fmt.Errorf("%w: %s", ErrUnresolved, r.Replacement)
	}

	return checkSignature(replacement, source, r.Outer.Callee, r.Negate)
}
