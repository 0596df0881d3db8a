// Copyright 2025 The ninjascan Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"errors"

	"github.com/buildfmt/ninjascan/report"
)

// Sentinel causes for scan failures, for use with [errors.Is].
var (
	// ErrLex is an unrecognized byte sequence at a known position.
	ErrLex = errors.New("lexing error")

	// ErrUnexpectedEOF is end-of-input reached in the middle of a construct,
	// such as inside a ${name} reference.
	ErrUnexpectedEOF = errors.New("unexpected EOF")
)

// ScanError is a scan failure with source context.
//
// Its Error() string is the full rendered diagnostic, in ninja's
// "file:line: message" format with a source snippet and caret. Callers that
// want to build richer diagnostics can use the raw offset and span instead.
type ScanError struct {
	// Path is the display label of the failing file.
	Path string

	// Offset is the byte offset of the failure in the input.
	Offset int

	// Line (1-based) and Column (0-based, in bytes) locate Offset.
	Line, Column int

	diagnostic report.Diagnostic
	cause      error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return report.Renderer{}.Diagnostic(e.diagnostic)
}

// Unwrap returns the failure cause: [ErrLex], [ErrUnexpectedEOF], or nil for
// caller-supplied messages built with [Lexer.Errorf].
func (e *ScanError) Unwrap() error {
	return e.cause
}

// Diagnostic returns the structured diagnostic for this error, for callers
// that render with a custom [report.Renderer].
func (e *ScanError) Diagnostic() report.Diagnostic {
	return e.diagnostic
}

// errorAt builds a *ScanError positioned at the given byte offset.
func (l *Lexer) errorAt(offset int, cause error, message string) *ScanError {
	loc := l.file.Location(offset)
	return &ScanError{
		Path:       l.file.Path(),
		Offset:     offset,
		Line:       loc.Line,
		Column:     loc.Column,
		diagnostic: report.Errorf(l.file.Span(offset, offset), "%s", message),
		cause:      cause,
	}
}
