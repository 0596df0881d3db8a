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

package ninjascan_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfmt/ninjascan"
	"github.com/buildfmt/ninjascan/internal/golden"
	"github.com/buildfmt/ninjascan/lexer"
)

func TestScanCorpus(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "NINJASCAN_REFRESH",
		Extension: "ninja",
		Outputs: []golden.Output{
			{Extension: "tokens.tsv"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		items, err := ninjascan.ScanText(path, text)

		var tsv strings.Builder
		require.NoError(t, ninjascan.WriteItems(&tsv, items))
		outputs[0] = tsv.String()

		if err != nil {
			outputs[1] = err.Error() + "\n"
		}
	})
}

func TestScanTextSwitchesModes(t *testing.T) {
	t.Parallel()

	items, err := ninjascan.ScanText("test.ninja", "build out: cc in | dep\n  flags = -O2 $extra\n")
	require.NoError(t, err)

	var kinds []string
	for _, item := range items {
		if item.Value != nil {
			kinds = append(kinds, item.Value.String())
			continue
		}
		kinds = append(kinds, item.Token.String())
	}
	assert.Equal(t, []string{
		"Build", "out", "Colon", "cc", "in", "Pipe", "dep", "Newline",
		"Indent", "Ident", "Equals", "-O2 [$extra]", "Newline", "EOF",
	}, kinds)
}

func TestScanTextReportsLexError(t *testing.T) {
	t.Parallel()

	items, err := ninjascan.ScanText("test.ninja", "ok\n?\n")
	require.Error(t, err)

	var lexErr *lexer.ScanError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)

	// Everything before the failure is still reported.
	require.Len(t, items, 2)
	assert.Equal(t, lexer.Ident, items[0].Token)
	assert.Equal(t, lexer.Newline, items[1].Token)
}

func TestScannerScansFilesConcurrently(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.ninja")
	bad := filepath.Join(dir, "bad.ninja")
	require.NoError(t, os.WriteFile(good, []byte("x = 1\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("?\n"), 0o600))

	scanner := &ninjascan.Scanner{MaxParallelism: 2}
	results := scanner.Scan(context.Background(), good, bad, filepath.Join(dir, "missing.ninja"))
	require.Len(t, results, 3)

	assert.Equal(t, good, results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.NotEmpty(t, results[0].Items)

	var lexErr *lexer.ScanError
	assert.ErrorAs(t, results[1].Err, &lexErr)

	assert.ErrorIs(t, results[2].Err, os.ErrNotExist)
}

func TestScannerHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := &ninjascan.Scanner{}
	results := scanner.Scan(ctx, "whatever.ninja")
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
