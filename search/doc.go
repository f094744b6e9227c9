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


// Package search retrieves the most relevant documents for a query.
//
// The Searcher type implements a multi-stage retrieval pipeline:
//   - Query expansion using data-driven alias tables
//   - Cosine similarity over the lexical index snapshot
//   - Context-aware multiplicative boosting
//   - Stable ranking with non-positive scores filtered
//
// Expansion and boost tables are configurable Rules values, so the matching
// algorithm can be tested and extended independently of the stock tables.
package search
