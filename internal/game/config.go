package game

import (
	"fmt"
	"sort"
)

// Band maps a stat reading to a value: the first band whose AtLeast the
// reading meets wins, so bands are kept in descending AtLeast order.
type Band struct {
	AtLeast float64 `yaml:"at_least"`
	Value   float64 `yaml:"value"`
}

func bandValue(bands []Band, reading, fallback float64) float64 {
	for _, b := range bands {
		if reading >= b.AtLeast {
			return b.Value
		}
	}
	return fallback
}

// EcologyConfig couples drift to the ocean's condition. Disabled, drift is
// plain income plus base pollution growth.
type EcologyConfig struct {
	Enabled              bool    `yaml:"enabled"`
	ToxicityAcceleration float64 `yaml:"toxicity_acceleration"`
	FishDecline          []Band  `yaml:"fish_decline"`
	IncomeByFish         []Band  `yaml:"income_by_fish"`
	IncomeBySupport      []Band  `yaml:"income_by_support"`
}

type EraBand struct {
	Era            Era    `yaml:"era"`
	Name           string `yaml:"name"`
	FromGeneration int    `yaml:"from_generation"`
}

type Config struct {
	StartYear        int `yaml:"start_year"`
	GenerationLength int `yaml:"generation_length"`
	Generations      int `yaml:"generations"`

	StartMoney                   float64 `yaml:"start_money"`
	StartOceanToxicity           float64 `yaml:"start_ocean_toxicity"`
	StartFishHealth              float64 `yaml:"start_fish_health"`
	StartPublicSupport           float64 `yaml:"start_public_support"`
	StartYearlyIncome            float64 `yaml:"start_yearly_income"`
	StartPollutionGrowthModifier float64 `yaml:"start_pollution_growth_modifier"`

	// BaseGrowthRate is the toxicity added per generation at modifier 1.
	BaseGrowthRate float64 `yaml:"base_growth_rate"`
	// IncomeYears is how many years of YearlyIncome one generation accrues.
	IncomeYears int `yaml:"income_years"`

	WinToxicityBelow float64 `yaml:"win_toxicity_below"`
	WinFishAtLeast   float64 `yaml:"win_fish_at_least"`
	LossToxicity     float64 `yaml:"loss_toxicity"`
	LossFish         float64 `yaml:"loss_fish"`
	LossSupport      float64 `yaml:"loss_support"`

	OfferSize     int     `yaml:"offer_size"`
	MaxActionCost float64 `yaml:"max_action_cost"`

	Ecology         EcologyConfig `yaml:"ecology"`
	Eras            []EraBand     `yaml:"eras"`
	GenerationNames []string      `yaml:"generation_names"`
}

func DefaultConfig() Config {
	return Config{
		StartYear:                    0,
		GenerationLength:             5,
		Generations:                  30,
		StartMoney:                   100,
		StartOceanToxicity:           10,
		StartFishHealth:              80,
		StartPublicSupport:           60,
		StartYearlyIncome:            20,
		StartPollutionGrowthModifier: 1,
		BaseGrowthRate:               5,
		IncomeYears:                  1,
		WinToxicityBelow:             60,
		WinFishAtLeast:               50,
		LossToxicity:                 100,
		LossFish:                     0,
		LossSupport:                  0,
		OfferSize:                    5,
		MaxActionCost:                350,
		Ecology:                      DefaultEcology(),
		Eras:                         DefaultEras(),
	}
}

// DefaultEcology returns the coupling tables with Enabled left false.
func DefaultEcology() EcologyConfig {
	return EcologyConfig{
		ToxicityAcceleration: 0.5,
		FishDecline: []Band{
			{AtLeast: 80, Value: 8},
			{AtLeast: 60, Value: 5},
			{AtLeast: 40, Value: 3},
			{AtLeast: 20, Value: 1},
		},
		IncomeByFish: []Band{
			{AtLeast: 80, Value: 1.0},
			{AtLeast: 60, Value: 0.8},
			{AtLeast: 40, Value: 0.6},
			{AtLeast: 20, Value: 0.4},
			{AtLeast: 0, Value: 0.2},
		},
		IncomeBySupport: []Band{
			{AtLeast: 80, Value: 1.0},
			{AtLeast: 60, Value: 0.9},
			{AtLeast: 40, Value: 0.7},
			{AtLeast: 20, Value: 0.5},
			{AtLeast: 0, Value: 0.3},
		},
	}
}

func DefaultEras() []EraBand {
	return []EraBand{
		{Era: EraEarly, Name: "Early Era", FromGeneration: 0},
		{Era: EraDiscovery, Name: "Discovery Era", FromGeneration: 5},
		{Era: EraAwakening, Name: "Awakening Era", FromGeneration: 10},
		{Era: EraTransformation, Name: "Transformation Era", FromGeneration: 20},
		{Era: EraLate, Name: "Late Era", FromGeneration: 25},
	}
}

// EndYear is the year at which the final generation has been played.
func (c Config) EndYear() int {
	return c.StartYear + c.Generations*c.GenerationLength
}

// GenerationOf is the number of generations completed by year.
func (c Config) GenerationOf(year int) int {
	if c.GenerationLength <= 0 {
		return 0
	}
	return (year - c.StartYear) / c.GenerationLength
}

func (c Config) EraFor(generation int) EraBand {
	band := c.Eras[0]
	for _, b := range c.Eras {
		if generation >= b.FromGeneration {
			band = b
		}
	}
	return band
}

func (c Config) GenerationName(generation int) string {
	if len(c.GenerationNames) == 0 {
		return fmt.Sprintf("Generation %d", generation+1)
	}
	return c.GenerationNames[generation%len(c.GenerationNames)]
}

func (c Config) Validate() error {
	if c.GenerationLength <= 0 {
		return fmt.Errorf("generation length must be positive, got %d", c.GenerationLength)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	if c.StartYear < 0 {
		return fmt.Errorf("start year must not be negative, got %d", c.StartYear)
	}
	if c.OfferSize <= 0 {
		return fmt.Errorf("offer size must be positive, got %d", c.OfferSize)
	}
	if c.IncomeYears < 0 {
		return fmt.Errorf("income years must not be negative, got %d", c.IncomeYears)
	}
	if c.MaxActionCost < 0 {
		return fmt.Errorf("max action cost must not be negative")
	}
	if c.StartMoney < 0 || c.StartYearlyIncome < 0 || c.StartPollutionGrowthModifier < 0 {
		return fmt.Errorf("start money, income and growth modifier must not be negative")
	}
	if c.BaseGrowthRate < 0 {
		return fmt.Errorf("base growth rate must not be negative")
	}
	for name, v := range map[string]float64{
		"start ocean toxicity": c.StartOceanToxicity,
		"start fish health":    c.StartFishHealth,
		"start public support": c.StartPublicSupport,
		"win toxicity":         c.WinToxicityBelow,
		"win fish":             c.WinFishAtLeast,
		"loss toxicity":        c.LossToxicity,
		"loss fish":            c.LossFish,
		"loss support":         c.LossSupport,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be within [0,100], got %g", name, v)
		}
	}
	if c.WinToxicityBelow > c.LossToxicity {
		return fmt.Errorf("win toxicity %g is above loss toxicity %g", c.WinToxicityBelow, c.LossToxicity)
	}
	if c.WinFishAtLeast <= c.LossFish {
		return fmt.Errorf("win fish %g must be above loss fish %g", c.WinFishAtLeast, c.LossFish)
	}
	if c.StartOceanToxicity >= c.LossToxicity || c.StartFishHealth <= c.LossFish || c.StartPublicSupport <= c.LossSupport {
		return fmt.Errorf("start values already meet a loss condition")
	}
	if len(c.Eras) == 0 {
		return fmt.Errorf("at least one era is required")
	}
	if !sort.SliceIsSorted(c.Eras, func(i, j int) bool { return c.Eras[i].FromGeneration < c.Eras[j].FromGeneration }) {
		return fmt.Errorf("eras must be ordered by from_generation")
	}
	if c.Eras[0].FromGeneration != 0 {
		return fmt.Errorf("first era must start at generation 0")
	}
	seen := map[Era]bool{}
	for _, e := range c.Eras {
		if e.Era == "" {
			return fmt.Errorf("era tag must not be empty")
		}
		if seen[e.Era] {
			return fmt.Errorf("duplicate era %q", e.Era)
		}
		seen[e.Era] = true
	}
	for _, bands := range [][]Band{c.Ecology.FishDecline, c.Ecology.IncomeByFish, c.Ecology.IncomeBySupport} {
		for i := 1; i < len(bands); i++ {
			if bands[i].AtLeast > bands[i-1].AtLeast {
				return fmt.Errorf("ecology bands must be in descending at_least order")
			}
		}
	}
	return nil
}
