package search

import (
	"testing"

	"github.com/poiesic/rowctx/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(content string) *core.Document {
	return core.NewDocument(content, core.Metadata{})
}

func TestBoost_StateTerms(t *testing.T) {
	boosts := DefaultRules().Boosts

	t.Run("state present in both compounds the factor", func(t *testing.T) {
		docs := []*core.Document{
			doc("State: CO | Measure: Obesity"),
			doc("State: FL | Measure: Obesity"),
		}
		// query mentions "colorado", which also contains the substring "co";
		// the document contains "co", so exactly one state term overlaps.
		boosted := Boost([]float64{0.5, 0.5}, "obesity rate in colorado", docs, boosts)
		assert.InDelta(t, 0.5*1.5*1.3, boosted[0], 1e-9)
		assert.InDelta(t, 0.5*1.3, boosted[1], 1e-9)
	})

	t.Run("multiple matching state terms multiply", func(t *testing.T) {
		docs := []*core.Document{doc("Location: colorado")}
		// "colorado" and "co" both appear in query and document.
		boosted := Boost([]float64{1.0}, "colorado", docs, boosts)
		assert.InDelta(t, 1.5*1.5, boosted[0], 1e-9)
	})

	t.Run("monotonic for equal raw scores", func(t *testing.T) {
		docs := []*core.Document{
			doc("StateDesc: Texas | Measure: Diabetes"),
			doc("StateDesc: Florida | Measure: Diabetes"),
		}
		boosted := Boost([]float64{0.4, 0.4}, "diabetes in texas", docs, boosts)
		assert.Greater(t, boosted[0], boosted[1])
	})
}

func TestBoost_HealthTerms(t *testing.T) {
	boosts := DefaultRules().Boosts

	docs := []*core.Document{
		doc("Measure: Obesity"),
		doc("Measure: Stroke"),
	}
	boosted := Boost([]float64{0.5, 0.5}, "obesity and stroke", docs, boosts)
	assert.InDelta(t, 0.5*1.3, boosted[0], 1e-9)
	assert.InDelta(t, 0.5*1.3, boosted[1], 1e-9)
}

func TestBoost_LocationContext(t *testing.T) {
	boosts := DefaultRules().Boosts

	t.Run("applies once regardless of term count", func(t *testing.T) {
		// document and query both mention two location terms; the factor
		// still applies a single time.
		docs := []*core.Document{doc("Region: south | Area: metro")}
		boosted := Boost([]float64{1.0}, "which region and area", docs, boosts)
		assert.InDelta(t, 1.2, boosted[0], 1e-9)
	})

	t.Run("needs both sides", func(t *testing.T) {
		docs := []*core.Document{doc("Measure: Obesity")}
		boosted := Boost([]float64{1.0}, "which region", docs, boosts)
		assert.InDelta(t, 1.0, boosted[0], 1e-9)
	})
}

func TestBoost_CountyPenalty(t *testing.T) {
	boosts := DefaultRules().Boosts

	t.Run("document without county is penalized", func(t *testing.T) {
		// document carries no location term and no "co" substring, so only
		// the penalty applies.
		docs := []*core.Document{doc("Measure: Obesity prevalence")}
		boosted := Boost([]float64{1.0}, "county level", docs, boosts)
		assert.InDelta(t, 0.7, boosted[0], 1e-9)
	})

	t.Run("document with county escapes the penalty", func(t *testing.T) {
		docs := []*core.Document{doc("CountyName: Denver County")}
		boosted := Boost([]float64{1.0}, "county level", docs, boosts)
		// "county" contains the substring "co", so the state factor fires
		// alongside the location boost. The penalty does not.
		assert.InDelta(t, 1.5*1.2, boosted[0], 1e-9)
	})
}

func TestBoost_ZeroScoreStaysZero(t *testing.T) {
	boosts := DefaultRules().Boosts
	docs := []*core.Document{doc("State: CO | Measure: Obesity")}
	boosted := Boost([]float64{0}, "obesity in colorado", docs, boosts)
	assert.Zero(t, boosted[0])
}

func TestBoost_LeavesInputUntouched(t *testing.T) {
	boosts := DefaultRules().Boosts
	docs := []*core.Document{doc("State: CO")}
	raw := []float64{0.5}
	boosted := Boost(raw, "colorado", docs, boosts)
	require.NotSame(t, &raw[0], &boosted[0])
	assert.Equal(t, 0.5, raw[0])
}
