package game

import (
	"fmt"
	"testing"
)

func testAction(id string, cost float64, effects ...Effect) Action {
	return Action{ID: ActionID(id), Name: id, Cost: cost, Effects: effects}
}

// testCatalog is a small content set: twelve actions, one automatic event
// for the whole run and one interactive crisis between years 20 and 30.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := &Catalog{}
	for i := 1; i <= 12; i++ {
		c.Actions = append(c.Actions, testAction(fmt.Sprintf("act_%02d", i), float64(i*5),
			Effect{Stat: StatOceanToxicity, Delta: -2},
			Effect{Stat: StatPublicSupport, Delta: 1},
		))
	}
	c.Events = []Event{
		{
			ID: "calm_tide", Name: "Calm Tide", Kind: EventAutomatic,
			YearMin: 0, YearMax: 1000, Weight: 1,
			Effects: Effects{{Stat: StatFishHealth, Delta: 1}},
		},
		{
			ID: "gear_crisis", Name: "Ghost Gear Crisis", Kind: EventInteractive,
			YearMin: 20, YearMax: 30, Weight: 1,
			Choices: []Choice{
				{Label: "Fund retrieval", Effects: Effects{{Stat: StatMoney, Delta: -10}, {Stat: StatOceanToxicity, Delta: -3}}},
				{Label: "Ignore it", Effects: Effects{{Stat: StatFishHealth, Delta: -5}}},
			},
		},
	}
	for _, era := range []Era{EraEarly, EraDiscovery, EraAwakening, EraTransformation, EraLate} {
		c.Lore = append(c.Lore, LoreDrop{ID: "lore_" + string(era), Era: era, Weight: 1, Title: string(era)})
	}
	if err := c.Validate(DefaultConfig()); err != nil {
		t.Fatalf("test catalog invalid: %v", err)
	}
	return c
}

// gentleConfig keeps the run alive for all generations regardless of
// what the player picks.
func gentleConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseGrowthRate = 0
	cfg.StartMoney = 1000
	return cfg
}
