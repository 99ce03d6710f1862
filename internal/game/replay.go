package game

import (
	"fmt"

	"go.uber.org/zap"
)

// Decision is the player input for one generation. Branch is ignored when
// the generation had no interactive event; Action 0 holds.
type Decision struct {
	Branch int `json:"branch,omitempty"`
	Action int `json:"action"`
}

// Replay runs a whole game from seed and decisions. It stops at the first
// terminal outcome, or returns the sequencer suspended if decisions run out.
func Replay(catalog *Catalog, cfg Config, seed int64, decisions []Decision, logger *zap.Logger) (*Sequencer, error) {
	q, err := NewSequencer(catalog, cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	if err := q.Start(); err != nil {
		return nil, err
	}
	for i, d := range decisions {
		if q.Phase().Terminal() {
			break
		}
		if q.Phase() == PhaseAwaitingBranchChoice {
			if err := q.ChooseBranch(d.Branch); err != nil {
				return q, fmt.Errorf("decision %d: %w", i+1, err)
			}
		}
		if d.Action == 0 {
			err = q.Hold()
		} else {
			err = q.ChooseAction(d.Action)
		}
		if err != nil {
			return q, fmt.Errorf("decision %d: %w", i+1, err)
		}
	}
	return q, nil
}
