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

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/buildfmt/ninjascan/internal/interval"
)

// DefaultContextBytes is how much of the offending line the compact format
// shows when [Renderer].ContextBytes is unset.
const DefaultContextBytes = 50

// Renderer renders diagnostics as text.
//
// The zero value renders the compact single-caret format that lexer errors
// use for their Error() strings.
type Renderer struct {
	// Pretty selects the multi-line format with a line-number gutter and
	// underlined spans, suitable for terminal output.
	Pretty bool

	// ContextBytes bounds how much of the offending line the compact format
	// shows. Zero means DefaultContextBytes.
	ContextBytes int
}

// Render writes each diagnostic to out, one per line group.
func (r Renderer) Render(out io.Writer, diagnostics ...Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := io.WriteString(out, r.Diagnostic(d)); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostic renders a single diagnostic, without a trailing newline.
func (r Renderer) Diagnostic(d Diagnostic) string {
	if r.Pretty {
		return r.pretty(d)
	}
	return r.compact(d)
}

// compact renders the classic ninja error format:
//
//	path:line: message
//	offending line, up to ContextBytes bytes
//	    ^
//
// The caret sits under the failing column, counted in bytes. The source
// snippet is included whenever the diagnostic has a known position.
func (r Renderer) compact(d Diagnostic) string {
	if d.Primary.IsZero() {
		return d.Message
	}
	limit := r.ContextBytes
	if limit <= 0 {
		limit = DefaultContextBytes
	}

	loc := d.Primary.StartLoc()
	var out strings.Builder
	fmt.Fprintf(&out, "%s:%d: %s\n", d.Primary.Path(), loc.Line, d.Message)

	// The line is truncated at its newline (or a stray NUL byte) and at the
	// byte budget, whichever comes first.
	line := d.Primary.File.Text()[loc.Offset-loc.Column:]
	var n int
	for n < limit && n < len(line) && line[n] != '\n' && line[n] != 0 {
		n++
	}
	out.WriteString(line[:n])
	out.WriteByte('\n')
	out.WriteString(strings.Repeat(" ", loc.Column))
	out.WriteByte('^')
	return out.String()
}

// annotation is a single underlined region in pretty output.
type annotation struct {
	span      Span
	underline byte // '^' for the primary span, '-' for notes
	message   string
}

// pretty renders a gutter-and-underline format:
//
//	error: message
//	  --> path:line:column
//	    |
//	 12 | build foo.o: cc foo.c
//	    |       ^^^^^
//
// Tabs are expanded and underline widths are computed from rendered text
// width, so carets line up even for wide runes.
func (r Renderer) pretty(d Diagnostic) string {
	var out strings.Builder
	out.WriteString("error: ")
	out.WriteString(d.Message)
	if d.Primary.IsZero() {
		return out.String()
	}

	primary := d.Primary
	file := primary.File
	loc := primary.StartLoc()
	fmt.Fprintf(&out, "\n --> %s:%d:%d", file.Path(), loc.Line, loc.Column)

	// Group the annotated spans by the lines they touch.
	byLine := interval.New[int, annotation]()
	add := func(span Span, underline byte, message string) {
		if span.IsZero() || span.File != file {
			return
		}
		first := span.StartLoc().Line
		last := file.Location(max(span.Start, span.End-1)).Line
		byLine.Insert(first, last, annotation{span, underline, message})
	}
	add(primary, '^', "")
	for _, note := range d.Notes {
		add(note.Span, '-', note.Message)
	}

	first, last, ok := byLine.Bounds()
	if !ok {
		return out.String()
	}

	gutter := len(strconv.Itoa(last))
	bar := strings.Repeat(" ", gutter) + " |"
	out.WriteByte('\n')
	out.WriteString(bar)

	skipped := false
	for lineno := first; lineno <= last; lineno++ {
		var anns []annotation
		for e := range byLine.Overlapping(lineno, lineno) {
			anns = append(anns, e.Value)
		}
		if len(anns) == 0 {
			skipped = true
			continue
		}
		if skipped {
			fmt.Fprintf(&out, "\n%s...", strings.Repeat(" ", gutter))
			skipped = false
		}

		lineStart, _ := file.LineOffsets(lineno)
		text := file.Line(lineno)
		fmt.Fprintf(&out, "\n%*d | ", gutter, lineno)
		stringWidth(0, text, &out)

		for _, ann := range anns {
			lo := clamp(ann.span.Start-lineStart, 0, len(text))
			hi := clamp(ann.span.End-lineStart, lo, len(text))

			pad := stringWidth(0, text[:lo], nil)
			width := stringWidth(pad, text[lo:hi], nil) - pad
			if width == 0 {
				width = 1 // Zero-length spans still get a caret.
			}

			fmt.Fprintf(&out, "\n%s %s%s",
				bar,
				strings.Repeat(" ", pad),
				strings.Repeat(string(ann.underline), width),
			)
			if ann.message != "" {
				out.WriteByte(' ')
				out.WriteString(ann.message)
			}
		}
	}
	return out.String()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
