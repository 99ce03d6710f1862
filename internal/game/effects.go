package game

import "fmt"

// ApplyEffect applies one effect and clamps straight away, so an excess
// past a bound is dropped rather than carried into the next effect.
func ApplyEffect(s *GameState, e Effect) {
	switch e.Stat {
	case StatMoney:
		s.Money += e.Delta
	case StatOceanToxicity:
		s.OceanToxicity += e.Delta
	case StatFishHealth:
		s.FishHealth += e.Delta
	case StatPublicSupport:
		s.PublicSupport += e.Delta
	case StatYearlyIncome:
		s.YearlyIncome += e.Delta
	case StatPollutionGrowth:
		if e.Multiply {
			s.PollutionGrowthModifier *= e.Delta
		} else {
			s.PollutionGrowthModifier += e.Delta
		}
	}
	clampState(s)
}

// ApplyEffects applies effects in listed order.
func ApplyEffects(s *GameState, effects Effects) {
	for _, e := range effects {
		ApplyEffect(s, e)
	}
}

func CanAfford(s *GameState, a Action) bool {
	return s.Money >= a.Cost
}

// ApplyAction deducts the cost as an implicit first effect and then
// applies the action's deltas. An unaffordable action leaves s untouched.
func ApplyAction(s *GameState, a Action) error {
	if !CanAfford(s, a) {
		return &InvalidSelectionError{
			Reason: ReasonUnaffordable,
			Detail: fmt.Sprintf("%s costs %.0f, treasury holds %.0f", a.Name, a.Cost, s.Money),
		}
	}
	ApplyEffect(s, Effect{Stat: StatMoney, Delta: -a.Cost})
	ApplyEffects(s, a.Effects)
	return nil
}

// DriftResult reports what passive drift did in one generation.
type DriftResult struct {
	Income      float64 `json:"income"`
	Toxicity    float64 `json:"toxicity"`
	FishDecline float64 `json:"fish_decline"`
}

// ApplyDrift runs the once-per-generation passive step: pollution growth,
// fish decline when ecology coupling is on, then income.
func ApplyDrift(s *GameState, cfg Config) DriftResult {
	var res DriftResult

	growth := cfg.BaseGrowthRate * s.PollutionGrowthModifier
	if cfg.Ecology.Enabled {
		growth *= 1 + (s.OceanToxicity/100)*cfg.Ecology.ToxicityAcceleration
	}
	before := s.OceanToxicity
	s.OceanToxicity = clamp(s.OceanToxicity+growth, 0, 100)
	res.Toxicity = s.OceanToxicity - before

	if cfg.Ecology.Enabled {
		decline := bandValue(cfg.Ecology.FishDecline, s.OceanToxicity, 0)
		before := s.FishHealth
		s.FishHealth = clamp(s.FishHealth-decline, 0, 100)
		res.FishDecline = before - s.FishHealth
	}

	income := s.YearlyIncome * float64(cfg.IncomeYears)
	if cfg.Ecology.Enabled {
		income *= bandValue(cfg.Ecology.IncomeByFish, s.FishHealth, 1)
		income *= bandValue(cfg.Ecology.IncomeBySupport, s.PublicSupport, 1)
	}
	s.Money += income
	res.Income = income

	clampState(s)
	return res
}
