package prompt

import (
	"fmt"
	"strings"

	"github.com/poiesic/rowctx/core"
)

// Section labels and templates are part of the observable contract: prompts
// must be byte-identical for identical inputs.
const (
	metadataHeader = "=== Dataset Metadata ==="
	rowsHeader     = "=== Relevant Data Rows ==="

	promptTemplate = `Based on the following context data, please answer the user's question.

User Question: %s

Context:
%s

Please provide a detailed and accurate answer based on the data provided above.`
)

// skippedSidecarKey is omitted from the metadata block; it holds a large
// nested column description in dataset descriptors.
const skippedSidecarKey = "columns"

// FormatContext renders ranked retrieval results and optional sidecar
// metadata into a single deterministic prompt string. Scores are formatted
// to three decimal places; the reserved source and row_index keys are
// omitted from each row's field listing.
func FormatContext(results []core.RankedDocument, query string, sidecar core.Metadata) string {
	var parts []string

	if sidecar.Len() > 0 {
		parts = append(parts, metadataHeader)
		for _, f := range sidecar.Fields() {
			if f.Key == skippedSidecarKey {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", f.Key, f.Value))
		}
		parts = append(parts, "")
	}

	parts = append(parts, rowsHeader)
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("\n--- Row %d (Relevance: %.3f) ---", i+1, result.Score))
		for _, f := range result.Document.Metadata.Fields() {
			if f.Key == core.MetaSource || f.Key == core.MetaRowIndex {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", f.Key, f.Value))
		}
	}

	context := strings.Join(parts, "\n")
	return fmt.Sprintf(promptTemplate, query, context)
}
