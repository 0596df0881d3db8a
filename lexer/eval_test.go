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

package lexer_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/buildfmt/ninjascan/lexer"
)

type evalCase struct {
	Name  string         `yaml:"name"`
	Input string         `yaml:"input"`
	Path  bool           `yaml:"path"`
	Want  []evalFragment `yaml:"want"`
	Err   string         `yaml:"err"` // "", "eof", or "lex"
}

type evalFragment struct {
	Special bool   `yaml:"special"`
	Text    string `yaml:"text"`
}

func TestReadEvalString(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/evalstrings.yaml")
	require.NoError(t, err)

	var cases []evalCase
	require.NoError(t, yaml.Unmarshal(data, &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			l := lexer.New(tc.Name+".ninja", tc.Input)
			var eval lexer.EvalString
			err := l.ReadEvalString(&eval, tc.Path)

			switch tc.Err {
			case "":
				require.NoError(t, err)
			case "eof":
				require.ErrorIs(t, err, lexer.ErrUnexpectedEOF)
			case "lex":
				require.ErrorIs(t, err, lexer.ErrLex)
			default:
				t.Fatalf("bad err field %q", tc.Err)
			}

			var want []lexer.Fragment
			for _, f := range tc.Want {
				kind := lexer.Raw
				if f.Special {
					kind = lexer.Special
				}
				want = append(want, lexer.Fragment{Kind: kind, Text: f.Text})
			}
			if diff := cmp.Diff(want, eval.Fragments()); diff != "" {
				t.Errorf("fragments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathTermination(t *testing.T) {
	t.Parallel()

	// The space after "foo" delimits the path and is eaten along with any
	// further whitespace, so the next read lands directly on "bar".
	l := lexer.New("test.ninja", "foo bar")
	var eval lexer.EvalString
	require.NoError(t, l.ReadEvalString(&eval, true))
	assert.Equal(t, "foo", eval.String())

	assert.Equal(t, lexer.Ident, l.ReadToken())
	assert.Equal(t, "bar", l.TokenText())
}

func TestPathLeavesDelimiterTokens(t *testing.T) {
	t.Parallel()

	l := lexer.New("test.ninja", "out: in\n")
	var out lexer.EvalString
	require.NoError(t, l.ReadEvalString(&out, true))
	assert.Equal(t, "out", out.String())

	assert.Equal(t, lexer.Colon, l.ReadToken())

	var in lexer.EvalString
	require.NoError(t, l.ReadEvalString(&in, true))
	assert.Equal(t, "in", in.String())

	assert.Equal(t, lexer.Newline, l.ReadToken())
	assert.Equal(t, lexer.EOF, l.ReadToken())
}

func TestValueEndsBeforeNewline(t *testing.T) {
	t.Parallel()

	l := lexer.New("test.ninja", "a b\nnext\n")
	var eval lexer.EvalString
	require.NoError(t, l.ReadEvalString(&eval, false))
	assert.Equal(t, "a b", eval.String())

	// The newline is left for the caller.
	assert.Equal(t, lexer.Newline, l.ReadToken())
	assert.Equal(t, lexer.Ident, l.ReadToken())
	assert.Equal(t, "next", l.TokenText())
}

func TestUnexpectedEOFPosition(t *testing.T) {
	t.Parallel()

	l := lexer.New("test.ninja", "${abc")
	var eval lexer.EvalString
	err := l.ReadEvalString(&eval, false)
	require.ErrorIs(t, err, lexer.ErrUnexpectedEOF)

	var lexErr *lexer.ScanError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 5, lexErr.Offset)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 5, lexErr.Column)
	assert.Equal(t, "test.ninja:1: unexpected EOF\n${abc\n     ^", err.Error())
}

func TestLexErrorPosition(t *testing.T) {
	t.Parallel()

	l := lexer.New("test.ninja", "x = a\nbad$/b\n")

	// Skip past "x = " so the failure lands mid-file.
	assert.Equal(t, lexer.Ident, l.ReadToken())
	assert.Equal(t, lexer.Equals, l.ReadToken())
	var first lexer.EvalString
	require.NoError(t, l.ReadEvalString(&first, false))
	assert.Equal(t, lexer.Newline, l.ReadToken())

	var eval lexer.EvalString
	err := l.ReadEvalString(&eval, false)
	require.ErrorIs(t, err, lexer.ErrLex)

	var lexErr *lexer.ScanError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
	assert.Equal(t, 3, lexErr.Column)
	assert.Equal(t, "test.ninja:2: lexing error\nbad$/b\n   ^", err.Error())
}

func TestEvalStringSerialization(t *testing.T) {
	t.Parallel()

	l := lexer.New("test.ninja", "cc -o ${out} $in\n")
	var eval lexer.EvalString
	require.NoError(t, l.ReadEvalString(&eval, false))
	assert.Equal(t, "cc -o [$out] [$in]", eval.String())
	assert.False(t, eval.Empty())
}
