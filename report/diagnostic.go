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

package report

import "fmt"

// Diagnostic is a single source-located message.
//
// The lexer produces diagnostics with only a primary span; callers building
// richer messages (such as a parser explaining what it expected) may attach
// any number of secondary notes.
type Diagnostic struct {
	// The main message of the diagnostic.
	Message string

	// The source location the diagnostic points at. May be the zero span, in
	// which case no source context is rendered.
	Primary Span

	// Secondary annotations, rendered after the primary span in pretty mode.
	Notes []Note
}

// Note is a secondary annotation on a [Diagnostic].
type Note struct {
	Message string
	Span    Span
}

// Errorf constructs a diagnostic pointing at the given span.
func Errorf(at Spanner, format string, args ...any) Diagnostic {
	return Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Primary: getSpan(at),
	}
}

// WithNote returns a copy of d with an additional secondary annotation.
func (d Diagnostic) WithNote(at Spanner, format string, args ...any) Diagnostic {
	d.Notes = append(d.Notes, Note{
		Message: fmt.Sprintf(format, args...),
		Span:    getSpan(at),
	})
	return d
}

// Span implements [Spanner].
func (d Diagnostic) Span() Span {
	return d.Primary
}

// getSpan extracts a span from a Spanner, but returns the zero span when
// s is nil, which would otherwise panic.
func getSpan(s Spanner) Span {
	if s == nil {
		return Span{}
	}
	return s.Span()
}
