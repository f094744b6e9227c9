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


// Package ingestion converts tabular sources into retrievable documents.
//
// The Loader flattens CSV rows into "col: value" text with ordered
// metadata, optionally sampling large files deterministically, and the
// sidecar loader picks up YAML descriptors placed next to the data file.
package ingestion
