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


package index

import "errors"

var (
	// ErrInvalidMaxFeatures is returned when the vocabulary cap is not positive.
	ErrInvalidMaxFeatures = errors.New("max features must be at least 1")

	// ErrInvalidMaxDocFreq is returned when the document-frequency cutoff is
	// outside (0, 1].
	ErrInvalidMaxDocFreq = errors.New("max document frequency must be in (0, 1]")

	// ErrInvalidNGramRange is returned when the n-gram range is malformed.
	ErrInvalidNGramRange = errors.New("invalid n-gram range")
)
