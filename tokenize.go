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

package ninjascan

import (
	"fmt"
	"io"

	"github.com/buildfmt/ninjascan/lexer"
	"github.com/buildfmt/ninjascan/report"
)

// Item is one entry in a scanned file: either a plain token, or a run of
// value text scanned as an evaluable string.
type Item struct {
	// Token is the token kind. Meaningful only when Value is nil.
	Token lexer.Kind

	// Span covers the item's source text.
	Span report.Span

	// Value is set for value text: the right-hand side of an assignment, or
	// a path on a build/default/include/subninja line.
	Value *lexer.EvalString

	// PathMode records which scanning mode produced Value.
	PathMode bool
}

// ScanText lexes one build file in memory.
//
// It walks the token stream, switching into value scanning where the lexical
// grammar calls for it: after '=' the rest of the line is a free-form value,
// and after the build, rule-less default, include, and subninja keywords the
// line holds whitespace-delimited paths. No grammar is enforced beyond that;
// assembling rules and edges is the parser's job.
//
// On a lexing failure the items scanned so far are returned along with a
// *[lexer.ScanError].
func ScanText(path, text string) ([]Item, error) {
	l := lexer.New(path, text)
	var items []Item

	token := func(k lexer.Kind) {
		items = append(items, Item{Token: k, Span: l.TokenSpan()})
	}
	value := func(pathMode bool) (empty bool, err error) {
		start := l.Offset()
		var eval lexer.EvalString
		if err := l.ReadEvalString(&eval, pathMode); err != nil {
			return false, err
		}
		if eval.Empty() {
			return true, nil
		}
		items = append(items, Item{
			Span:     l.File().Span(start, l.TokenSpan().End),
			Value:    &eval,
			PathMode: pathMode,
		})
		return false, nil
	}

	for {
		tok := l.ReadToken()
		switch tok {
		case lexer.EOF:
			token(tok)
			return items, nil

		case lexer.Error:
			return items, l.Errorf("lexing error")

		case lexer.Equals:
			token(tok)
			if _, err := value(false); err != nil {
				return items, err
			}

		case lexer.Build, lexer.Default, lexer.Include, lexer.Subninja:
			token(tok)
			// Read the rest of the line as paths and their delimiters.
			for {
				empty, err := value(true)
				if err != nil {
					return items, err
				}
				if !empty {
					continue
				}
				t := l.ReadToken()
				switch t {
				case lexer.Colon, lexer.Pipe, lexer.Pipe2:
					token(t)
					continue
				case lexer.Newline:
					token(t)
				case lexer.EOF:
					token(t)
					return items, nil
				case lexer.Error:
					return items, l.Errorf("lexing error")
				default:
					// Nothing the path grammar knows; hand the token back to
					// the main loop.
					l.UnreadToken()
				}
				break
			}

		default:
			token(tok)
		}
	}
}

// WriteItems writes items as a tab-separated listing: kind, byte offsets,
// line:column, and the item text. Values are serialized with unresolved
// references in [$name] form.
func WriteItems(w io.Writer, items []Item) error {
	for _, item := range items {
		label := item.Token.String()
		text := item.Span.Text()
		if item.Value != nil {
			if item.PathMode {
				label = "Path"
			} else {
				label = "Value"
			}
			text = item.Value.String()
		}

		loc := item.Span.StartLoc()
		_, err := fmt.Fprintf(w, "%s\t%03d:%03d\t%d:%d\t%q\n",
			label, item.Span.Start, item.Span.End, loc.Line, loc.Column, text)
		if err != nil {
			return err
		}
	}
	return nil
}
