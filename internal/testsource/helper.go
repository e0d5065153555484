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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the qgetenv check by handling common
// boilerplate code for parsing and type-checking Go source fragments against a
// stub of the environment variable API.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg = "test"

	// Filename is the name of the parsed source file.
	Filename = "test.go"
)

// Prelude declares a stub of the environment variable API in the test package.
const Prelude = `type QByteArray struct {
	data string
	null bool
}

func (a QByteArray) IsEmpty() bool       { return len(a.data) == 0 }
func (a QByteArray) IsNull() bool        { return a.null }
func (a QByteArray) ToInt() int          { return len(a.data) }
func (a QByteArray) ToIntBase(b int) int { return len(a.data) * b }
func (a QByteArray) Trimmed() QByteArray { return a }

func Qgetenv(name string) QByteArray { return QByteArray{data: name, null: name == ""} }

func QEnvironmentVariableIsEmpty(name string) bool { return name == "" }
func QEnvironmentVariableIsSet(name string) bool   { return name != "" }
func QEnvironmentVariableIntValue(name string) int { return len(name) }

type Bool bool

func (b Bool) String() string { return "bool" }

func (a QByteArray) IsNullBool() Bool { return Bool(a.null) }

func QEnvironmentVariableIsSetBool(name string) Bool { return name != "" }

type Buffer struct{ data string }

func (b Buffer) IsEmpty() bool { return len(b.data) == 0 }

func Getbuf(name string) Buffer { return Buffer{data: name} }
`

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test` that starts with [Prelude]. This allows testing statement-level
// code fragments without manually constructing the surrounding package scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file, including comments.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, Filename, Content(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = lastFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Content returns the complete source file [Parse] creates for src.
func Content(src string) []byte {
	const (
		header     = "package " + testpkg + "\n\n" + Prelude + "\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.Bytes()
}

// ReadFile returns a file reader serving the content [Parse] creates for src.
func ReadFile(src string) func(filename string) ([]byte, error) {
	return func(string) ([]byte, error) { return Content(src), nil }
}

// Blank returns the right-hand side of the first `_ = expr` assignment in body.
func Blank(tb testing.TB, body inspector.Cursor) inspector.Cursor {
	tb.Helper()

	for a := range body.Preorder((*ast.AssignStmt)(nil)) {
		stmt := a.Node().(*ast.AssignStmt)
		if id, ok := stmt.Lhs[0].(*ast.Ident); ok && id.Name == "_" {
			return a.ChildAt(edge.AssignStmt_Rhs, 0)
		}
	}

	tb.Fatal("Assignment not found")

	return inspector.Cursor{}
}

func lastFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)
	}

	if fn == nil {
		return nil, root
	}

	return fn, body
}
