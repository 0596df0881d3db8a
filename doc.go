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

// Package ninjascan scans ninja build files into token and value listings.
//
// The lexing core lives in the [github.com/buildfmt/ninjascan/lexer] package
// and performs no I/O; this package adds the file-reading shell around it: a
// [Resolver] that loads build files, a [Scanner] that lexes many files
// concurrently, and a tab-separated listing format for the results.
//
// Assembling tokens into rules and build edges, resolving variables, and
// constructing a build graph are all jobs for a parser built on top of the
// lexer; this module stops at the lexical level.
package ninjascan
