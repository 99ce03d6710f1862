package game

// Stats is the numeric part of a GameState. It is a plain value so turn
// history can keep before/after snapshots.
type Stats struct {
	Year                    int     `json:"year"`
	Money                   float64 `json:"money"`
	OceanToxicity           float64 `json:"ocean_toxicity"`
	FishHealth              float64 `json:"fish_health"`
	PublicSupport           float64 `json:"public_support"`
	YearlyIncome            float64 `json:"yearly_income"`
	PollutionGrowthModifier float64 `json:"pollution_growth_modifier"`
}

func (s Stats) Value(stat Stat) float64 {
	switch stat {
	case StatMoney:
		return s.Money
	case StatOceanToxicity:
		return s.OceanToxicity
	case StatFishHealth:
		return s.FishHealth
	case StatPublicSupport:
		return s.PublicSupport
	case StatYearlyIncome:
		return s.YearlyIncome
	case StatPollutionGrowth:
		return s.PollutionGrowthModifier
	default:
		return 0
	}
}

// Diff returns after-minus-before for every stat.
func (s Stats) Diff(before Stats) map[Stat]float64 {
	out := make(map[Stat]float64, len(AllStats))
	for _, stat := range AllStats {
		out[stat] = s.Value(stat) - before.Value(stat)
	}
	return out
}

type GameState struct {
	Stats

	UsedActionIDs map[ActionID]struct{} `json:"used_action_ids"`

	LastEvent         string   `json:"last_event,omitempty"`
	LastEventChoice   string   `json:"last_event_choice,omitempty"`
	LastAction        ActionID `json:"last_action,omitempty"`
	LastActionEffects Effects  `json:"last_action_effects,omitempty"`
}

func NewGameState(cfg Config) GameState {
	return GameState{
		Stats: Stats{
			Year:                    cfg.StartYear,
			Money:                   cfg.StartMoney,
			OceanToxicity:           cfg.StartOceanToxicity,
			FishHealth:              cfg.StartFishHealth,
			PublicSupport:           cfg.StartPublicSupport,
			YearlyIncome:            cfg.StartYearlyIncome,
			PollutionGrowthModifier: cfg.StartPollutionGrowthModifier,
		},
		UsedActionIDs: make(map[ActionID]struct{}),
	}
}

func (s *GameState) Used(id ActionID) bool {
	_, ok := s.UsedActionIDs[id]
	return ok
}

func (s *GameState) markUsed(id ActionID) {
	if s.UsedActionIDs == nil {
		s.UsedActionIDs = make(map[ActionID]struct{})
	}
	s.UsedActionIDs[id] = struct{}{}
}

// Clone copies the state including the used-action set.
func (s *GameState) Clone() GameState {
	out := *s
	out.UsedActionIDs = make(map[ActionID]struct{}, len(s.UsedActionIDs))
	for id := range s.UsedActionIDs {
		out.UsedActionIDs[id] = struct{}{}
	}
	out.LastActionEffects = append(Effects(nil), s.LastActionEffects...)
	return out
}

func clamp(number, min, max float64) float64 {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func floor0(number float64) float64 {
	if number < 0 {
		return 0
	}
	return number
}

func clampState(s *GameState) {
	s.OceanToxicity = clamp(s.OceanToxicity, 0, 100)
	s.FishHealth = clamp(s.FishHealth, 0, 100)
	s.PublicSupport = clamp(s.PublicSupport, 0, 100)
	s.Money = floor0(s.Money)
	s.YearlyIncome = floor0(s.YearlyIncome)
	s.PollutionGrowthModifier = floor0(s.PollutionGrowthModifier)
}
