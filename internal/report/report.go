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

// Package report emits qgetenv diagnostics to the analysis framework.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/qgetenv/internal/check"
	"fillmore-labs.com/qgetenv/internal/config"
)

// Pass reports diagnostics of the check to an *[analysis.Pass].
// It implements [check.Reporter].
type Pass struct {
	pass   *analysis.Pass
	fixits config.Fixits
}

// New creates a reporter for p with the given fix-it categories enabled.
func New(p *analysis.Pass, fixits config.Fixits) Pass {
	return Pass{pass: p, fixits: fixits}
}

// Enabled reports whether a fix-it category is enabled.
func (r Pass) Enabled(fixit config.Fixit) bool {
	return r.fixits.Enabled(fixit)
}

// Report emits a diagnostic, attaching the rewrite as suggested fix.
func (r Pass) Report(d check.Diagnostic) {
	diagnostic := analysis.Diagnostic{
		Pos:     d.Pos,
		End:     d.End,
		Message: d.Message,
	}

	if len(d.Edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Message, TextEdits: d.Edits}}
	}

	r.pass.Report(diagnostic)
}

// ReportUnfixable emits a notice that the rewrite failed and the code needs to be fixed manually.
func (r Pass) ReportUnfixable(pos token.Pos, fixit config.Fixit, reason error) {
	r.pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: fixit.String(),
		Message:  fmt.Sprintf("Fix-it %s failed, requires manual intervention: %v", fixit, reason),
	})
}
