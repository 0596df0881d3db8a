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

// Package report provides source files, spans, and diagnostic rendering.
//
// A [File] owns the text of one build file and lazily indexes its newlines,
// so any byte offset can be converted to a line/column [Location] in
// O(log n). A [Span] is a borrowed [start, end) byte range into a file; it
// never copies the underlying text and must not outlive its file.
//
// [Diagnostic] and [Renderer] turn spans into human-readable messages. The
// compact format matches what ninja prints; the pretty format adds a line
// gutter and underlines for terminal use.
package report
