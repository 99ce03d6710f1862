package game

import (
	"fmt"
	"strings"
)

type Stat string

const (
	StatMoney           Stat = "money"
	StatOceanToxicity   Stat = "ocean_toxicity"
	StatFishHealth      Stat = "fish_health"
	StatPublicSupport   Stat = "public_support"
	StatYearlyIncome    Stat = "yearly_income"
	StatPollutionGrowth Stat = "pollution_growth"
)

// AllStats lists every stat in display order.
var AllStats = []Stat{
	StatMoney,
	StatOceanToxicity,
	StatFishHealth,
	StatPublicSupport,
	StatYearlyIncome,
	StatPollutionGrowth,
}

var statAliases = map[string]Stat{
	"money":              StatMoney,
	"treasury":           StatMoney,
	"ocean_toxicity":     StatOceanToxicity,
	"toxicity":           StatOceanToxicity,
	"pollution":          StatOceanToxicity,
	"fish_health":        StatFishHealth,
	"fish":               StatFishHealth,
	"marine_life":        StatFishHealth,
	"public_support":     StatPublicSupport,
	"support":            StatPublicSupport,
	"trust":              StatPublicSupport,
	"yearly_income":      StatYearlyIncome,
	"income":             StatYearlyIncome,
	"pollution_growth":   StatPollutionGrowth,
	"growth_modifier":    StatPollutionGrowth,
	"pollution_modifier": StatPollutionGrowth,
}

func ParseStat(raw string) (Stat, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if s, ok := statAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown stat %q", raw)
}

func (s Stat) Label() string {
	switch s {
	case StatMoney:
		return "Treasury"
	case StatOceanToxicity:
		return "Ocean Toxicity"
	case StatFishHealth:
		return "Marine Life"
	case StatPublicSupport:
		return "Public Trust"
	case StatYearlyIncome:
		return "Yearly Income"
	case StatPollutionGrowth:
		return "Pollution Growth"
	default:
		return string(s)
	}
}

// Bounded reports whether the stat lives in [0,100].
func (s Stat) Bounded() bool {
	switch s {
	case StatOceanToxicity, StatFishHealth, StatPublicSupport:
		return true
	default:
		return false
	}
}

// Effect is one signed change to a stat. Multiply is only meaningful for
// StatPollutionGrowth, where the modifier is scaled by Delta instead.
type Effect struct {
	Stat     Stat    `json:"stat"`
	Delta    float64 `json:"delta"`
	Multiply bool    `json:"multiply,omitempty"`
}

func (e Effect) String() string {
	if e.Multiply {
		return fmt.Sprintf("%s x%.2f", e.Stat.Label(), e.Delta)
	}
	if e.Stat == StatPollutionGrowth {
		return fmt.Sprintf("%s %+.2f", e.Stat.Label(), e.Delta)
	}
	return fmt.Sprintf("%s %+.0f", e.Stat.Label(), e.Delta)
}

type Effects []Effect

// Sum totals the additive deltas for a stat.
func (es Effects) Sum(stat Stat) float64 {
	total := 0.0
	for _, e := range es {
		if e.Stat == stat && !e.Multiply {
			total += e.Delta
		}
	}
	return total
}

func (es Effects) String() string {
	if len(es) == 0 {
		return "no effect"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}
