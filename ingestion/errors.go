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


package ingestion

import "errors"

var (
	// ErrSourceUnreadable indicates the tabular source is missing or unparseable.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrNoSidecar indicates no sidecar descriptor exists next to the source.
	// Callers must treat this as a normal outcome, not a failure.
	ErrNoSidecar = errors.New("no sidecar descriptor")

	// ErrSidecarUnreadable indicates the sidecar descriptor exists but cannot
	// be read or parsed.
	ErrSidecarUnreadable = errors.New("sidecar descriptor unreadable")

	// ErrInvalidSampleSize indicates a negative sample size.
	ErrInvalidSampleSize = errors.New("sample size cannot be negative")
)
