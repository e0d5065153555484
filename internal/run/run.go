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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/qgetenv/internal/astutil"
	"fillmore-labs.com/qgetenv/internal/check"
	"fillmore-labs.com/qgetenv/internal/config"
	"fillmore-labs.com/qgetenv/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the qgetenv check on all files of a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("%s: %s %w", check.Name, inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "QGetEnv")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	c := check.Checker{
		Info:     p.TypesInfo,
		Pkg:      p.Pkg,
		Reporter: report.New(p, r.Fixits),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file, p.ReadFile)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.NoLintGroup(file.Doc) {
			continue
		}

		checkFile(ctx, c, currentFile, f)
	}

	return nil, nil
}

// checkFile visits all call expressions of a file in pre-order.
func checkFile(ctx context.Context, c check.Checker, currentFile astutil.CurrentFile, f inspector.Cursor) {
	defer trace.StartRegion(ctx, "File").End()

	f.Inspect([]ast.Node{(*ast.FuncDecl)(nil), (*ast.CallExpr)(nil)}, func(n inspector.Cursor) bool {
		switch node := n.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment
			return !astutil.NoLintGroup(node.Doc)

		case *ast.CallExpr:
			if !currentFile.NoLintComment(node.Pos()) {
				c.Visit(currentFile, node)
			}
		}

		return true
	})
}
