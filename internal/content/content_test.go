package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/planet-aqua/internal/game"
)

const actionsHeader = "id,name,description,cost,unlock_year,lock_year,requires_support,requires,effect_money,effect_ocean_toxicity,effect_fish,effect_support,effect_yearly_income,effect_pollution_growth\n"

const eventsHeader = "id,name,text,event_type,year_min,year_max,weight,effect_money,effect_ocean_toxicity,effect_fish,effect_support,effect_yearly_income,effect_pollution_growth,choice_a_text,choice_a_effects,choice_b_text,choice_b_effects,choice_c_text,choice_c_effects\n"

func fixture(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadDefaultContent(t *testing.T) {
	bundle, err := Load(Default())
	require.NoError(t, err)

	c := bundle.Catalog
	assert.GreaterOrEqual(t, len(c.Actions), 30)
	assert.NotEmpty(t, c.Events)
	assert.NotEmpty(t, c.Reflections)

	for _, era := range []game.Era{game.EraEarly, game.EraDiscovery, game.EraAwakening, game.EraTransformation, game.EraLate} {
		found := false
		for _, l := range c.Lore {
			if l.Era == era {
				found = true
				break
			}
		}
		assert.True(t, found, "no lore for era %s", era)
	}

	interactive := 0
	for _, e := range c.Events {
		if e.Interactive() {
			interactive++
			assert.GreaterOrEqual(t, len(e.Choices), 2, e.ID)
		}
	}
	assert.GreaterOrEqual(t, interactive, 3)

	cfg := bundle.Config
	assert.True(t, cfg.Ecology.Enabled)
	assert.Equal(t, 5, cfg.IncomeYears)
	assert.Len(t, cfg.GenerationNames, cfg.Generations)
}

func TestDefaultContentPlaysToAnEnding(t *testing.T) {
	bundle, err := Load(Default())
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		q, err := game.NewSequencer(bundle.Catalog, bundle.Config, seed, nil)
		require.NoError(t, err)
		require.NoError(t, q.Start())

		for steps := 0; !q.Phase().Terminal(); steps++ {
			require.Less(t, steps, 100)
			switch q.Phase() {
			case game.PhaseAwaitingBranchChoice:
				require.NoError(t, q.ChooseBranch(1))
			case game.PhaseAwaitingActionChoice:
				picked := false
				for i := range q.Turn().Offer {
					if q.Affordable(i + 1) {
						require.NoError(t, q.ChooseAction(i+1))
						picked = true
						break
					}
				}
				if !picked {
					require.NoError(t, q.Hold())
				}
			}
		}
		assert.True(t, q.Outcome().Terminal())
	}
}

func TestLoadParsesRows(t *testing.T) {
	fsys := fixture(map[string]string{
		ActionsFile: actionsHeader +
			"ban_bags,Ban Bags,\"No bags, anywhere.\",40,0,,,,0,-4,0,-3,0,-0.1\n" +
			"treaty,Treaty,,300,50,,50,ban_bags,,-10,4,6,,x0.7\n",
		EventsFile: eventsHeader +
			"storm,Storm,,auto,0,150,2,-20,3,,-2,,,,,,,,\n" +
			"scare,Scare,,interactive,20,25,,,,,,,,Ban,money:-15;fish:+5,Ignore,support:-15,,\n",
		LoreFile:        "id,era,weight,title,content\nfirst,Early,2,The First Rafts,Long ago.\n",
		ReflectionsFile: "action_id,positive_impact,negative_impact,neutral_impact\nban_bags,Good,Bad,Meh\n",
	})

	bundle, err := Load(fsys)
	require.NoError(t, err)
	c := bundle.Catalog

	require.Len(t, c.Actions, 2)
	bags := c.Actions[0]
	assert.Equal(t, "No bags, anywhere.", bags.Description)
	assert.Equal(t, 40.0, bags.Cost)
	assert.Equal(t, game.Effects{
		{Stat: game.StatOceanToxicity, Delta: -4},
		{Stat: game.StatPublicSupport, Delta: -3},
		{Stat: game.StatPollutionGrowth, Delta: -0.1},
	}, bags.Effects)

	treaty := c.Actions[1]
	assert.Equal(t, game.Unlock{MinYear: 50, MinSupport: 50, Requires: []game.ActionID{"ban_bags"}}, treaty.Unlock)
	assert.Contains(t, treaty.Effects, game.Effect{Stat: game.StatPollutionGrowth, Delta: 0.7, Multiply: true})

	require.Len(t, c.Events, 2)
	assert.Equal(t, game.EventAutomatic, c.Events[0].Kind)
	assert.Equal(t, 2, c.Events[0].Weight)
	scare := c.Events[1]
	assert.Equal(t, game.EventInteractive, scare.Kind)
	assert.Equal(t, 1, scare.Weight)
	require.Len(t, scare.Choices, 2)
	assert.Equal(t, "Ban", scare.Choices[0].Label)
	assert.Equal(t, game.Effects{
		{Stat: game.StatMoney, Delta: -15},
		{Stat: game.StatFishHealth, Delta: 5},
	}, scare.Choices[0].Effects)

	require.Len(t, c.Lore, 1)
	assert.Equal(t, game.EraEarly, c.Lore[0].Era)
	r, ok := c.Reflection("ban_bags")
	require.True(t, ok)
	assert.Equal(t, "Meh", r.Neutral)

	// no config.yaml in the fixture
	assert.Equal(t, game.DefaultConfig(), bundle.Config)
}

func TestLoadReportsLineNumbers(t *testing.T) {
	fsys := fixture(map[string]string{
		ActionsFile: actionsHeader +
			"ok,Fine,,10,,,,,,,,,,\n" +
			"broken,Broken,,ten,,,,,,,,,,\n",
		EventsFile: eventsHeader +
			"odd,Odd,,sometimes,0,10,,,,,,,,,,,,,\n" +
			"scare,Scare,,interactive,0,10,,,,,,,,Ban,morale:5,Ignore,,,\n",
	})

	_, err := Load(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrContentValidation))

	var cve *game.ContentValidationError
	require.True(t, errors.As(err, &cve))
	msg := err.Error()
	assert.Contains(t, msg, `actions.csv:3 [broken]: cost: "ten" is not a number`)
	assert.Contains(t, msg, `events.csv:2 [odd]: event_type: "sometimes" is not auto or interactive`)
	assert.Contains(t, msg, `events.csv:3 [scare]: choice_a_effects: unknown stat "morale"`)
}

func TestLoadMissingColumn(t *testing.T) {
	fsys := fixture(map[string]string{
		ActionsFile: "id,name\nx,X\n",
		EventsFile:  eventsHeader,
	})
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `actions.csv:1: missing column "cost"`)
}

func TestLoadRunsCatalogValidation(t *testing.T) {
	fsys := fixture(map[string]string{
		ActionsFile: actionsHeader +
			"dup,One,,10,,,,,,,,,,\n" +
			"dup,Two,,10,,,,,,,,,,\n",
		EventsFile: eventsHeader,
	})
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[dup]: duplicate id")
}

func TestLoadMissingRequiredFile(t *testing.T) {
	_, err := Load(fixture(map[string]string{EventsFile: eventsHeader}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open actions.csv")
}

func TestParseEffectList(t *testing.T) {
	got, err := parseEffectList(" money:-15 ; pollution_growth:x0.5;;")
	require.NoError(t, err)
	assert.Equal(t, game.Effects{
		{Stat: game.StatMoney, Delta: -15},
		{Stat: game.StatPollutionGrowth, Delta: 0.5, Multiply: true},
	}, got)

	_, err = parseEffectList("money=5")
	assert.Error(t, err)
	_, err = parseEffectList("money:lots")
	assert.Error(t, err)
}
