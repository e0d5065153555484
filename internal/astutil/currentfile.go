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
	"errors"
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// linterName is the name used in //nolint directives.
const linterName = "qgetenv"

// ErrNoReader is returned by [CurrentFile.Content] when no file reader is available.
var ErrNoReader = errors.New("no file reader")

// ReadFile reads the content of a named file, see [golang.org/x/tools/go/analysis.Pass.ReadFile].
type ReadFile func(filename string) ([]byte, error)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	content   func() ([]byte, error)
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
// The file content is read at most once, on the first call to [CurrentFile.Content].
func NewCurrentFile(fset *token.FileSet, file *ast.File, readFile ReadFile) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	content := sync.OnceValues(func() ([]byte, error) {
		if readFile == nil {
			return nil, ErrNoReader
		}

		return readFile(handle.Name())
	})

	return CurrentFile{file, handle, generated, content}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Content returns the source text of the file.
func (c CurrentFile) Content() ([]byte, error) {
	if c.content == nil {
		return nil, ErrNoReader
	}

	return c.content()
}

// Size returns the size of the file as recorded in the file set.
func (c CurrentFile) Size() int {
	return c.handle.Size()
}

// Contains reports whether pos is a valid position in this file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	base := c.handle.Base()

	return base <= int(pos) && int(pos) <= base+c.handle.Size()
}

// Offset returns the byte offset of pos in this file.
func (c CurrentFile) Offset(pos token.Pos) int {
	return c.handle.Offset(pos)
}

// Remapped reports whether a //line directive changes the reported position of pos.
func (c CurrentFile) Remapped(pos token.Pos) bool {
	adjusted, raw := c.handle.PositionFor(pos, true), c.handle.PositionFor(pos, false)

	return adjusted.Filename != raw.Filename || adjusted.Line != raw.Line || adjusted.Column != raw.Column
}

// HasComment reports whether any comment overlaps the half-open range [pos, end).
func (c CurrentFile) HasComment(pos, end token.Pos) bool {
	if c.file == nil || pos >= end {
		return false
	}

	// find the first comment group ending after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.End() - p) })

	for _, group := range c.file.Comments[i:] {
		if group.Pos() >= end {
			break
		}

		for _, comment := range group.List {
			if comment.Pos() < end && comment.End() > pos {
				return true
			}
		}
	}

	return false
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if the line of pos carries a //nolint:qgetenv comment after pos.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	line := c.line(pos)

	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.Pos() - p) })

	for _, group := range c.file.Comments[i:] {
		if c.line(group.Pos()) != line {
			break // past this line
		}

		for _, comment := range group.List {
			if c.line(comment.Pos()) != line {
				break
			}

			if CommentHasNoLint(comment) {
				return true
			}
		}
	}

	return false
}

// NoLintGroup checks whether the last line of a doc comment is a //nolint:qgetenv directive.
func NoLintGroup(doc *ast.CommentGroup) bool {
	return doc != nil && len(doc.List) > 0 && CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:qgetenv` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
