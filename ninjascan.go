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
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Resolver turns the name of a build file into its source text. This is how
// the [Scanner] loads the files to be lexed.
type Resolver interface {
	// FindFile locates and loads the named build file.
	FindFile(path string) (string, error)
}

// SourceResolver loads files from the file system.
type SourceResolver struct {
	// Root is the directory relative paths are resolved against. Empty means
	// the current directory.
	Root string
}

// FindFile implements [Resolver].
func (r *SourceResolver) FindFile(path string) (string, error) {
	if r.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Result is the outcome of scanning one file.
type Result struct {
	// Path is the file's name as given to [Scanner.Scan].
	Path string

	// Items holds the scanned tokens and values, up to the point of failure
	// if Err is set.
	Items []Item

	// Err is the scan failure, if any. Lexing failures are a
	// [github.com/buildfmt/ninjascan/lexer.ScanError]; resolver failures are
	// returned as-is.
	Err error
}

// Scanner lexes ninja build files, many at a time.
type Scanner struct {
	// Resolves file names into source text. Nil means a [SourceResolver]
	// rooted at the current directory.
	Resolver Resolver

	// The maximum parallelism to use when scanning. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// Scan lexes the given files concurrently and returns one [Result] per path,
// in the order given. Failures are reported per file; a malformed file does
// not stop the others.
//
// Cancelling ctx abandons files that have not started; their results carry
// the context error.
func (s *Scanner) Scan(ctx context.Context, paths ...string) []Result {
	par := s.MaxParallelism
	if par <= 0 {
		par = min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	}
	resolver := s.Resolver
	if resolver == nil {
		resolver = &SourceResolver{}
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		results[i].Path = path
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			text, err := resolver.FindFile(path)
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Items, results[i].Err = ScanText(path, text)
		}()
	}
	wg.Wait()
	return results
}
