package game

import "testing"

func TestEvaluate(t *testing.T) {
	cfg := DefaultConfig()
	final := cfg.EndYear()

	tests := []struct {
		name       string
		year       int
		toxicity   float64
		fish       float64
		support    float64
		wantStatus OutcomeStatus
		wantEnding Ending
	}{
		{name: "midgame", year: 50, toxicity: 40, fish: 60, support: 50, wantStatus: OutcomeContinuing},
		{name: "fish collapse", year: 50, toxicity: 40, fish: 0, support: 50, wantStatus: OutcomeLost, wantEnding: EndingEcosystemCollapse},
		{name: "toxic seas", year: 50, toxicity: 100, fish: 60, support: 50, wantStatus: OutcomeLost, wantEnding: EndingToxicSeas},
		{name: "uprising", year: 50, toxicity: 40, fish: 60, support: 0, wantStatus: OutcomeLost, wantEnding: EndingUprising},
		{name: "collapse beats toxic seas", year: 50, toxicity: 100, fish: 0, support: 0, wantStatus: OutcomeLost, wantEnding: EndingEcosystemCollapse},
		{name: "toxic seas beats uprising", year: 50, toxicity: 100, fish: 10, support: 0, wantStatus: OutcomeLost, wantEnding: EndingToxicSeas},
		{name: "victory", year: final, toxicity: 59, fish: 50, support: 50, wantStatus: OutcomeWon, wantEnding: EndingVictory},
		{name: "stalemate on toxicity", year: final, toxicity: 61, fish: 50, support: 50, wantStatus: OutcomeLost, wantEnding: EndingStalemate},
		{name: "stalemate on fish", year: final, toxicity: 10, fish: 49, support: 50, wantStatus: OutcomeLost, wantEnding: EndingStalemate},
		{name: "toxicity on the win line", year: final, toxicity: 60, fish: 80, support: 50, wantStatus: OutcomeLost, wantEnding: EndingStalemate},
		{name: "loss in the final generation", year: final, toxicity: 100, fish: 80, support: 50, wantStatus: OutcomeLost, wantEnding: EndingToxicSeas},
		{name: "collapse in the final generation", year: final, toxicity: 10, fish: 0, support: 50, wantStatus: OutcomeLost, wantEnding: EndingEcosystemCollapse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewGameState(cfg)
			s.Year = tc.year
			s.OceanToxicity = tc.toxicity
			s.FishHealth = tc.fish
			s.PublicSupport = tc.support

			got := Evaluate(&s, cfg)
			if got.Status != tc.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status, tc.wantStatus)
			}
			if got.Ending != tc.wantEnding {
				t.Fatalf("ending = %q, want %q", got.Ending, tc.wantEnding)
			}
			if got.Terminal() != (tc.wantStatus != OutcomeContinuing) {
				t.Fatalf("Terminal() = %v for %s", got.Terminal(), got.Status)
			}
		})
	}
}

func TestEventDrivesFishToCollapse(t *testing.T) {
	cfg := DefaultConfig()
	s := NewGameState(cfg)
	s.FishHealth = 3

	ApplyEffects(&s, Effects{{Stat: StatFishHealth, Delta: -10}})
	if s.FishHealth != 0 {
		t.Fatalf("expected fish health clamped to 0, got %g", s.FishHealth)
	}
	got := Evaluate(&s, cfg)
	if got.Status != OutcomeLost || got.Ending != EndingEcosystemCollapse {
		t.Fatalf("expected ecosystem collapse, got %+v", got)
	}
}
