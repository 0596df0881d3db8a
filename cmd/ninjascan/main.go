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

// ninjascan dumps the token stream of ninja build files.
//
// Usage:
//
//	ninjascan [-j N] [-pretty] <file-or-glob>...
//
// Arguments may be doublestar globs, e.g. '**/*.ninja'. The token listing
// goes to stdout; diagnostics for malformed files go to stderr, and the exit
// status is non-zero if any file failed to lex.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/buildfmt/ninjascan"
	"github.com/buildfmt/ninjascan/lexer"
	"github.com/buildfmt/ninjascan/report"
)

var (
	jobs   = flag.Int("j", 0, "maximum number of files scanned in parallel (0 = number of CPUs)")
	pretty = flag.Bool("pretty", false, "render diagnostics with source underlines")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-j N] [-pretty] <file-or-glob>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var paths []string
	for _, arg := range flag.Args() {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: bad pattern %q: %v\n", os.Args[0], arg, err)
			os.Exit(2)
		}
		if len(matches) == 0 {
			// Not a glob, or nothing matched; let the resolver report it.
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}

	scanner := &ninjascan.Scanner{MaxParallelism: *jobs}
	failed := false
	for _, result := range scanner.Scan(context.Background(), paths...) {
		fmt.Printf("# %s\n", result.Path)
		if err := ninjascan.WriteItems(os.Stdout, result.Items); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
			os.Exit(1)
		}

		if result.Err == nil {
			continue
		}
		failed = true

		var lexErr *lexer.ScanError
		if *pretty && errors.As(result.Err, &lexErr) {
			fmt.Fprintln(os.Stderr, report.Renderer{Pretty: true}.Diagnostic(lexErr.Diagnostic()))
		} else {
			fmt.Fprintln(os.Stderr, result.Err)
		}
	}
	if failed {
		os.Exit(1)
	}
}
