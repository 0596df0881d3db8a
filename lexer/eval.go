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

import "strings"

// FragmentKind tags one fragment of an [EvalString].
type FragmentKind byte

const (
	// Raw is literal text, already unescaped.
	Raw FragmentKind = iota
	// Special is the name of an unresolved variable reference.
	Special
)

// Fragment is one piece of an [EvalString]: either literal text or a
// variable name, in source order.
//
// Text is usually a slice of the lexer's input buffer and borrows from it;
// fragments produced from escapes ("$$", "$ ") hold the decoded byte instead.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// EvalString is value text that has been scanned but not yet resolved:
// literal runs interleaved with variable references, in the order they
// appeared in the source.
//
// An EvalString is constructed empty and populated by
// [Lexer.ReadEvalString]. It is not safe to mutate once handed to a
// resolver.
type EvalString struct {
	parsed []Fragment
}

// Add appends one fragment. Adjacent Raw fragments are kept separate; the
// scanner emits them exactly as encountered.
func (e *EvalString) Add(kind FragmentKind, text string) {
	e.parsed = append(e.parsed, Fragment{Kind: kind, Text: text})
}

// Fragments returns the fragments in source order. The returned slice is
// owned by the EvalString.
func (e *EvalString) Fragments() []Fragment {
	return e.parsed
}

// Empty reports whether nothing was scanned into this EvalString.
func (e *EvalString) Empty() bool {
	return len(e.parsed) == 0
}

// String renders the unresolved string with variable references in [$name]
// form, mirroring ninja's serialized EvalString. Useful for debugging and
// token dumps; resolving variables is the caller's job.
func (e *EvalString) String() string {
	var out strings.Builder
	for _, frag := range e.parsed {
		if frag.Kind == Special {
			out.WriteString("[$")
			out.WriteString(frag.Text)
			out.WriteString("]")
		} else {
			out.WriteString(frag.Text)
		}
	}
	return out.String()
}
