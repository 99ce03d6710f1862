package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidateCollectsEveryProblem(t *testing.T) {
	c := &Catalog{
		Actions: []Action{
			testAction("dup", 10),
			testAction("dup", 10),
			testAction("pricey", 900),
			{ID: "orphan", Name: "Orphan", Unlock: Unlock{Requires: []ActionID{"ghost"}}},
			testAction("bad_stat", 5, Effect{Stat: "morale", Delta: 1}),
			testAction("bad_mult", 5, Effect{Stat: StatMoney, Delta: 2, Multiply: true}),
		},
		Events: []Event{
			{ID: "backwards", Name: "Backwards", Kind: EventAutomatic, YearMin: 20, YearMax: 20, Weight: 1},
			{ID: "lonely", Name: "Lonely", Kind: EventInteractive, YearMin: 0, YearMax: 10, Weight: 1, Choices: []Choice{{Label: "only"}}},
			{ID: "weightless", Name: "Weightless", Kind: EventAutomatic, YearMin: 0, YearMax: 10},
		},
		Lore: []LoreDrop{{ID: "lost", Era: "bronze", Weight: 1}},
		Reflections: []Reflection{
			{ActionID: "nobody"},
		},
	}

	err := c.Validate(DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContentValidation))

	var cve *ContentValidationError
	require.True(t, errors.As(err, &cve))

	msg := err.Error()
	for _, want := range []string{
		"[dup]: duplicate id",
		"[pricey]: cost 900 outside [0,350]",
		`[orphan]: requires unknown action "ghost"`,
		`[bad_stat]: unknown stat "morale"`,
		"[bad_mult]: multiplier not allowed on money",
		"[backwards]: year range [20,20) is empty",
		"[lonely]: interactive event needs 2-3 choices, has 1",
		"[weightless]: weight must be at least 1",
		`[lost]: unknown era "bronze"`,
		"[nobody]: unknown action",
	} {
		assert.Contains(t, msg, want)
	}
	assert.Len(t, cve.Problems, 10)
}

func TestCatalogValidateAcceptsFreeDecree(t *testing.T) {
	c := &Catalog{Actions: []Action{testAction("nudge", 0)}}
	assert.NoError(t, c.Validate(DefaultConfig()))
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog(t)
	c.Reflections = []Reflection{{ActionID: "act_01", Positive: "good"}}

	a, ok := c.Action("act_03")
	require.True(t, ok)
	assert.Equal(t, 15.0, a.Cost)

	_, ok = c.Action("nope")
	assert.False(t, ok)

	ev, ok := c.Event("gear_crisis")
	require.True(t, ok)
	assert.True(t, ev.Interactive())

	r, ok := c.Reflection("act_01")
	require.True(t, ok)
	assert.Equal(t, "good", r.Positive)
}

func TestParseStatAliases(t *testing.T) {
	tests := map[string]Stat{
		"money":           StatMoney,
		"Treasury":        StatMoney,
		" toxicity ":      StatOceanToxicity,
		"fish":            StatFishHealth,
		"marine_life":     StatFishHealth,
		"trust":           StatPublicSupport,
		"income":          StatYearlyIncome,
		"growth_modifier": StatPollutionGrowth,
	}
	for raw, want := range tests {
		got, err := ParseStat(raw)
		if err != nil {
			t.Fatalf("ParseStat(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseStat(%q) = %s, want %s", raw, got, want)
		}
	}
	if _, err := ParseStat("morale"); err == nil || !strings.Contains(err.Error(), "morale") {
		t.Fatalf("expected unknown stat error, got %v", err)
	}
}
