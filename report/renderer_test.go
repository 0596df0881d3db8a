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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfmt/ninjascan/report"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "foo\nbarbaz\n")
	d := report.Errorf(f.Span(8, 9), "oops")

	got := report.Renderer{}.Diagnostic(d)
	assert.Equal(t, "test.ninja:2: oops\nbarbaz\n    ^", got)
}

func TestCompactColumnZero(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "barbaz\n")
	d := report.Errorf(f.Span(0, 1), "oops")

	got := report.Renderer{}.Diagnostic(d)
	assert.Equal(t, "test.ninja:1: oops\nbarbaz\n^", got)
}

func TestCompactTruncation(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "abcdefghijklmnop\n")
	d := report.Errorf(f.Span(2, 3), "msg")

	got := report.Renderer{ContextBytes: 10}.Diagnostic(d)
	assert.Equal(t, "test.ninja:1: msg\nabcdefghij\n  ^", got)
}

func TestCompactStopsAtNUL(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "ab\x00cd")
	d := report.Errorf(f.Span(1, 2), "msg")

	got := report.Renderer{}.Diagnostic(d)
	assert.Equal(t, "test.ninja:1: msg\nab\n ^", got)
}

func TestCompactWithoutSpan(t *testing.T) {
	t.Parallel()

	d := report.Errorf(report.Span{}, "loading %q: no such file", "x.ninja")
	got := report.Renderer{}.Diagnostic(d)
	assert.Equal(t, `loading "x.ninja": no such file`, got)
}

func TestPretty(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "build foo: cc bar\n")
	d := report.Errorf(f.Span(6, 9), "duplicate output").
		WithNote(f.Span(14, 17), "previous use")

	got := report.Renderer{Pretty: true}.Diagnostic(d)
	assert.Equal(t, strings.Join([]string{
		"error: duplicate output",
		" --> test.ninja:1:6",
		"  |",
		"1 | build foo: cc bar",
		"  |       ^^^",
		"  |               --- previous use",
	}, "\n"), got)
}

func TestPrettyExpandsTabs(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "\tfoo\n")
	d := report.Errorf(f.Span(1, 4), "oops")

	got := report.Renderer{Pretty: true}.Diagnostic(d)
	assert.Equal(t, strings.Join([]string{
		"error: oops",
		" --> test.ninja:1:1",
		"  |",
		"1 |     foo",
		"  |     ^^^",
	}, "\n"), got)
}

func TestPrettySkipsUnannotatedLines(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "a\nb\nc\nd\n")
	d := report.Errorf(f.Span(0, 1), "dup").
		WithNote(f.Span(6, 7), "here")

	got := report.Renderer{Pretty: true}.Diagnostic(d)
	assert.Equal(t, strings.Join([]string{
		"error: dup",
		" --> test.ninja:1:0",
		"  |",
		"1 | a",
		"  | ^",
		" ...",
		"4 | d",
		"  | - here",
	}, "\n"), got)
}

func TestPrettyZeroLengthSpan(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "abc\n")
	d := report.Errorf(f.Span(1, 1), "missing thing")

	got := report.Renderer{Pretty: true}.Diagnostic(d)
	assert.Equal(t, strings.Join([]string{
		"error: missing thing",
		" --> test.ninja:1:1",
		"  |",
		"1 | abc",
		"  |  ^",
	}, "\n"), got)
}

func TestPrettyWithoutSpan(t *testing.T) {
	t.Parallel()

	d := report.Errorf(report.Span{}, "no position")
	got := report.Renderer{Pretty: true}.Diagnostic(d)
	assert.Equal(t, "error: no position", got)
}

func TestRender(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.ninja", "x\n")
	var out strings.Builder
	err := report.Renderer{}.Render(&out,
		report.Errorf(f.Span(0, 1), "first"),
		report.Errorf(report.Span{}, "second"),
	)
	require.NoError(t, err)
	assert.Equal(t, "test.ninja:1: first\nx\n^\nsecond\n", out.String())
}
