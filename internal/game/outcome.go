package game

type OutcomeStatus string

const (
	OutcomeContinuing OutcomeStatus = "continuing"
	OutcomeWon        OutcomeStatus = "won"
	OutcomeLost       OutcomeStatus = "lost"
)

type Ending string

const (
	EndingNone              Ending = ""
	EndingEcosystemCollapse Ending = "ecosystem collapse"
	EndingToxicSeas         Ending = "toxic seas"
	EndingUprising          Ending = "uprising"
	EndingStalemate         Ending = "stalemate ending"
	EndingVictory           Ending = "victory"
)

type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Ending  Ending        `json:"ending,omitempty"`
	Message string        `json:"message,omitempty"`
}

func (o Outcome) Terminal() bool {
	return o.Status == OutcomeWon || o.Status == OutcomeLost
}

// Evaluate checks end conditions in priority order. Loss conditions come
// first, so a breach in the final generation is still a loss.
func Evaluate(s *GameState, cfg Config) Outcome {
	// 1) Ecosystem collapse
	if s.FishHealth <= cfg.LossFish {
		return Outcome{Status: OutcomeLost, Ending: EndingEcosystemCollapse, Message: "The ocean has fallen silent."}
	}

	// 2) Toxic seas
	if s.OceanToxicity >= cfg.LossToxicity {
		return Outcome{Status: OutcomeLost, Ending: EndingToxicSeas, Message: "The ocean has become a toxic wasteland."}
	}

	// 3) Uprising
	if s.PublicSupport <= cfg.LossSupport {
		return Outcome{Status: OutcomeLost, Ending: EndingUprising, Message: "The citizens have risen against you."}
	}

	if cfg.GenerationOf(s.Year) >= cfg.Generations {
		// 4) Victory
		if s.OceanToxicity < cfg.WinToxicityBelow && s.FishHealth >= cfg.WinFishAtLeast {
			return Outcome{Status: OutcomeWon, Ending: EndingVictory, Message: "Planet Aqua flourishes under your watch."}
		}
		// 5) Final generation reached without meeting the win thresholds
		return Outcome{Status: OutcomeLost, Ending: EndingStalemate, Message: "The ocean endures, but only just."}
	}

	// 6) Ongoing
	return Outcome{Status: OutcomeContinuing}
}
