// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package index implements lexical vector-space indexing of documents.
//
// The Vectorizer tokenizes document text into word 1- to 3-grams, builds a
// capped vocabulary, and weighs each term with sublinear term frequency and
// smoothed inverse document frequency. Every Fit produces an immutable
// Snapshot holding one unit-length sparse vector per document; query
// strings are projected into the same space with Snapshot.Transform and
// compared with cosine similarity.
package index
