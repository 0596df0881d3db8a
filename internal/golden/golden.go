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

// Package golden provides a mechanism for managing test corpora: a directory
// of input files that each define one test case, with expected outputs
// checked in next to them.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a test corpus: table-driven tests where the "table" is
// in the file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable that, when set to a glob, selects test cases
	// whose expected outputs should be regenerated instead of compared.
	Refresh string

	// The file extension (without a dot) of files that define a test case,
	// e.g. "ninja".
	Extension string

	// Expected outputs of the test, found via Output.Extension. A missing
	// output file is treated as expecting the empty string.
	Outputs []Output
}

// Output represents one expected output of a test case.
//
// For Corpus.Extension "ninja" and Output.Extension "tokens.tsv", the runner
// compares against "foo.ninja.tokens.tsv" for a test case "foo.ninja".
type Output struct {
	Extension string

	// The comparison function. Nil compares byte-for-byte and renders a
	// unified diff on mismatch.
	Compare Compare
}

// Compare is a comparison function between strings. It returns "" if the
// strings match, and an error message otherwise.
type Compare func(got, want string) string

// Run enumerates the corpus and executes test on each case. test fills in
// one string per entry of [Corpus.Outputs].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	testDir := callerDir(1)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %q in $%s", refresh, c.Refresh)
		}
	}
	if refresh != "" {
		// Regenerated outputs still need review; fail so CI can't pass in
		// refresh mode.
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, testPath := range tests {
		name, _ := filepath.Rel(testDir, testPath)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(testPath)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", testPath, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			doRefresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				outputPath := fmt.Sprint(testPath, ".", output.Extension)

				if doRefresh {
					c.write(t, outputPath, outputs[i])
					continue
				}

				want, err := os.ReadFile(outputPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while loading output file %q: %v", outputPath, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = diffCompare
				}
				if msg := compare(outputs[i], string(want)); msg != "" {
					t.Errorf("golden: output mismatch for %q:\n%s", outputPath, msg)
				}
			}
		})
	}
}

func (c Corpus) write(t *testing.T, path, text string) {
	if text == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o660); err != nil {
		t.Errorf("golden: error while writing output file %q: %v", path, err)
	}
}

func diffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
