package search

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Alias is an ordered substring-rewrite rule: every occurrence of Term in
// the lower-cased query is replaced by Expansion. Matching is plain
// substring matching, not word-boundary aware, so a short term can match
// inside a longer word. That over-matching is a known property of the
// stock tables and is preserved deliberately.
type Alias struct {
	Term      string `yaml:"term"`
	Expansion string `yaml:"expansion"`
}

// Injection appends literal tokens to the query when any trigger substring
// is present.
type Injection struct {
	Triggers []string `yaml:"triggers"`
	Tokens   string   `yaml:"tokens"`
}

// Boosts holds the term lists and multipliers applied per document after
// similarity scoring.
type Boosts struct {
	StateTerms     []string `yaml:"state_terms"`
	StateFactor    float64  `yaml:"state_factor"`
	HealthTerms    []string `yaml:"health_terms"`
	HealthFactor   float64  `yaml:"health_factor"`
	LocationTerms  []string `yaml:"location_terms"`
	LocationFactor float64  `yaml:"location_factor"`
	PenaltyTerm    string   `yaml:"penalty_term"`
	PenaltyFactor  float64  `yaml:"penalty_factor"`
}

// Rules is the data-driven configuration for query expansion and context
// boosting. Alias rules apply in slice order.
type Rules struct {
	StateAliases  []Alias     `yaml:"state_aliases"`
	HealthAliases []Alias     `yaml:"health_aliases"`
	Injections    []Injection `yaml:"injections"`
	Boosts        Boosts      `yaml:"boosts"`
}

// stateAlias builds the rewrite that injects a state abbreviation while
// retaining the matched phrase.
func stateAlias(name, abbr string) Alias {
	return Alias{Term: name, Expansion: abbr + " " + name}
}

// DefaultRules returns the stock alias tables and boost factors for
// US public-health datasets.
func DefaultRules() Rules {
	return Rules{
		StateAliases: []Alias{
			stateAlias("colorado", "CO"), stateAlias("co", "CO"),
			stateAlias("california", "CA"), stateAlias("ca", "CA"),
			stateAlias("alabama", "AL"), stateAlias("al", "AL"),
			stateAlias("texas", "TX"), stateAlias("tx", "TX"),
			stateAlias("florida", "FL"), stateAlias("fl", "FL"),
			stateAlias("new york", "NY"), stateAlias("ny", "NY"),
		},
		HealthAliases: []Alias{
			{Term: "obesity", Expansion: "OBESITY obesity obese overweight"},
			{Term: "diabetes", Expansion: "DIABETES diabetes diabetic"},
			{Term: "heart disease", Expansion: "CHD coronary heart disease"},
			{Term: "stroke", Expansion: "STROKE cerebrovascular"},
			{Term: "depression", Expansion: "MHLTH mental health depression"},
			{Term: "asthma", Expansion: "CASTHMA asthma respiratory"},
		},
		Injections: []Injection{
			{Triggers: []string{"county"}, Tokens: "CountyName CountyFIPS"},
			{Triggers: []string{"state"}, Tokens: "StateAbbr StateName"},
			{Triggers: []string{"data", "information", "statistics"}, Tokens: "TotalPopulation Data_Value Measure"},
		},
		Boosts: Boosts{
			StateTerms: []string{
				"colorado", "california", "alabama", "texas", "florida",
				"co", "ca", "al", "tx", "fl",
			},
			StateFactor:    1.5,
			HealthTerms:    []string{"obesity", "diabetes", "heart", "stroke", "depression", "asthma"},
			HealthFactor:   1.3,
			LocationTerms:  []string{"county", "state", "region", "area"},
			LocationFactor: 1.2,
			PenaltyTerm:    "county",
			PenaltyFactor:  0.7,
		},
	}
}

// LoadRules reads a Rules document from a YAML file. Boost factors left at
// zero fall back to the stock values so partial rule files stay usable.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrRulesUnreadable, err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrRulesUnreadable, err)
	}
	rules.applyDefaultFactors()
	return rules, nil
}

func (r *Rules) applyDefaultFactors() {
	stock := DefaultRules().Boosts
	if r.Boosts.StateFactor == 0 {
		r.Boosts.StateFactor = stock.StateFactor
	}
	if r.Boosts.HealthFactor == 0 {
		r.Boosts.HealthFactor = stock.HealthFactor
	}
	if r.Boosts.LocationFactor == 0 {
		r.Boosts.LocationFactor = stock.LocationFactor
	}
	if r.Boosts.PenaltyFactor == 0 {
		r.Boosts.PenaltyFactor = stock.PenaltyFactor
	}
}
