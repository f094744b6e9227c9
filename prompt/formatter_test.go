package prompt

import (
	"strings"
	"testing"

	"github.com/poiesic/rowctx/core"
	"github.com/stretchr/testify/assert"
)

func rankedFixture() []core.RankedDocument {
	first := core.NewDocument("State: CO | Measure: Obesity", core.NewMetadata(
		core.Field{Key: core.MetaSource, Value: "places.csv"},
		core.Field{Key: core.MetaRowIndex, Value: "0"},
		core.Field{Key: "State", Value: "CO"},
		core.Field{Key: "Measure", Value: "Obesity"},
	))
	second := core.NewDocument("State: FL | Measure: Obesity", core.NewMetadata(
		core.Field{Key: core.MetaSource, Value: "places.csv"},
		core.Field{Key: core.MetaRowIndex, Value: "2"},
		core.Field{Key: "State", Value: "FL"},
		core.Field{Key: "Measure", Value: "Obesity"},
	))
	return []core.RankedDocument{
		{Document: first, Score: 0.78912},
		{Document: second, Score: 0.3},
	}
}

func TestFormatContext(t *testing.T) {
	t.Run("rows section with three decimal scores", func(t *testing.T) {
		out := FormatContext(rankedFixture(), "obesity in colorado", core.Metadata{})

		assert.Contains(t, out, "=== Relevant Data Rows ===")
		assert.Contains(t, out, "--- Row 1 (Relevance: 0.789) ---")
		assert.Contains(t, out, "--- Row 2 (Relevance: 0.300) ---")
		assert.Contains(t, out, "State: CO")
		assert.Contains(t, out, "Measure: Obesity")
	})

	t.Run("reserved keys omitted from row listings", func(t *testing.T) {
		out := FormatContext(rankedFixture(), "obesity in colorado", core.Metadata{})
		assert.NotContains(t, out, "places.csv")
		assert.NotContains(t, out, "row_index")
	})

	t.Run("query embedded literally", func(t *testing.T) {
		out := FormatContext(nil, "What is the obesity rate in Colorado?", core.Metadata{})
		assert.Contains(t, out, "User Question: What is the obesity rate in Colorado?")
	})

	t.Run("sidecar metadata block", func(t *testing.T) {
		sidecar := core.NewMetadata(
			core.Field{Key: "title", Value: "PLACES health data"},
			core.Field{Key: "columns", Value: "[State, Measure]"},
			core.Field{Key: "year", Value: "2021"},
		)
		out := FormatContext(rankedFixture(), "obesity", sidecar)

		assert.Contains(t, out, "=== Dataset Metadata ===")
		assert.Contains(t, out, "title: PLACES health data")
		assert.Contains(t, out, "year: 2021")
		// The columns key holds a large nested structure and is skipped.
		assert.NotContains(t, out, "[State, Measure]")
	})

	t.Run("no sidecar no metadata header", func(t *testing.T) {
		out := FormatContext(rankedFixture(), "obesity", core.Metadata{})
		assert.NotContains(t, out, "=== Dataset Metadata ===")
	})

	t.Run("empty results still render the frame", func(t *testing.T) {
		out := FormatContext(nil, "obesity", core.Metadata{})
		assert.Contains(t, out, "=== Relevant Data Rows ===")
		assert.Contains(t, out, "Please provide a detailed and accurate answer")
		assert.NotContains(t, out, "--- Row")
	})
}

func TestFormatContext_Idempotent(t *testing.T) {
	results := rankedFixture()
	sidecar := core.NewMetadata(core.Field{Key: "title", Value: "PLACES"})

	first := FormatContext(results, "obesity in colorado", sidecar)
	second := FormatContext(results, "obesity in colorado", sidecar)
	assert.Equal(t, first, second)
}

func TestFormatContext_ExactLayout(t *testing.T) {
	docMeta := core.NewMetadata(
		core.Field{Key: core.MetaSource, Value: "d.csv"},
		core.Field{Key: core.MetaRowIndex, Value: "0"},
		core.Field{Key: "State", Value: "CO"},
	)
	results := []core.RankedDocument{
		{Document: core.NewDocument("State: CO", docMeta), Score: 1.0},
	}

	out := FormatContext(results, "q", core.Metadata{})

	expected := strings.Join([]string{
		"Based on the following context data, please answer the user's question.",
		"",
		"User Question: q",
		"",
		"Context:",
		"=== Relevant Data Rows ===",
		"",
		"--- Row 1 (Relevance: 1.000) ---",
		"State: CO",
		"",
		"Please provide a detailed and accurate answer based on the data provided above.",
	}, "\n")
	assert.Equal(t, expected, out)
}
