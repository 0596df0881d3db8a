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

import "fmt"

// Kind identifies what kind of token the lexer returned.
//
// Tokens do not own text. The text of an [Ident] token (or any other) is the
// slice of the input covered by [Lexer.TokenSpan].
type Kind byte

const (
	Error Kind = iota // A byte the lexer does not recognize.

	Build
	Colon
	Default
	EOF
	Equals
	Ident
	Include
	Indent
	Newline
	Pipe
	Pipe2
	Rule
	Subninja
)

// keywords are matched with the same maximal-munch rule as identifiers, so
// "builder" is an identifier rather than Build followed by "er".
var keywords = map[string]Kind{
	"build":    Build,
	"default":  Default,
	"include":  Include,
	"rule":     Rule,
	"subninja": Subninja,
}

// Name returns a short human-readable label for this kind, for use in
// "expected X, got Y" messages. Kinds that never surface in user-facing
// messages return "".
func (k Kind) Name() string {
	switch k {
	case Error:
		return "lexing error"
	case Build:
		return "'build'"
	case Colon:
		return "':'"
	case Default:
		return "'default'"
	case EOF:
		return "eof"
	case Equals:
		return "'='"
	case Ident:
		return "identifier"
	case Include:
		return "'include'"
	case Indent:
		return "indent"
	case Newline:
		return "newline"
	case Pipe:
		return "'|'"
	case Pipe2:
		return "'||'"
	case Rule:
		return "'rule'"
	case Subninja:
		return "'subninja'"
	}
	return ""
}

// String implements [fmt.Stringer]. Unlike [Kind.Name], this is a debug
// label and is defined for every value.
func (k Kind) String() string {
	switch k {
	case Error:
		return "Error"
	case Build:
		return "Build"
	case Colon:
		return "Colon"
	case Default:
		return "Default"
	case EOF:
		return "EOF"
	case Equals:
		return "Equals"
	case Ident:
		return "Ident"
	case Include:
		return "Include"
	case Indent:
		return "Indent"
	case Newline:
		return "Newline"
	case Pipe:
		return "Pipe"
	case Pipe2:
		return "Pipe2"
	case Rule:
		return "Rule"
	case Subninja:
		return "Subninja"
	default:
		return fmt.Sprintf("lexer.Kind(%d)", int(k))
	}
}
