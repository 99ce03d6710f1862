// Package diary turns sequencer state into the Guardian's Diary prose:
// generation headings, the report on the previous generation and the
// ending narratives.
package diary

import (
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/game"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats a treasury amount with thousands separators.
func Money(v float64) string {
	return printer.Sprintf("$%d", int64(math.Round(v)))
}

// Signed formats a whole-number delta with its sign.
func Signed(v float64) string {
	return printer.Sprintf("%+d", int64(math.Round(v)))
}

const intro = `THE GUARDIAN'S DIARY

The floating cities of Planet Aqua drift on an ocean that feeds them, and an
ocean that is slowly being poisoned. Every five years the Council of Depths
names a new Ocean Guardian, who inherits this diary and the choices of those
who wrote in it before.

Thirty generations will pass. Keep the waters clean, keep the fish alive and
keep the people with you.`

func Intro() string {
	return intro
}

// Heading identifies one generation in the diary.
type Heading struct {
	Generation int
	Name       string
	FromYear   int
	ToYear     int
	Era        string
}

func NewHeading(cfg game.Config, generation int) Heading {
	from := cfg.StartYear + generation*cfg.GenerationLength
	return Heading{
		Generation: generation,
		Name:       cfg.GenerationName(generation),
		FromYear:   from,
		ToYear:     from + cfg.GenerationLength,
		Era:        cfg.EraFor(generation).Name,
	}
}

func (h Heading) String() string {
	return fmt.Sprintf("%s · Years %d-%d · %s", h.Name, h.FromYear, h.ToYear, h.Era)
}

type Tone int

const (
	Neutral Tone = iota
	Positive
	Negative
)

func (t Tone) String() string {
	switch t {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// ToneOf judges a decree by its own effects on the ocean: more fish or
// less toxicity reads well, the reverse reads badly.
func ToneOf(effects game.Effects) Tone {
	score := effects.Sum(game.StatFishHealth) - effects.Sum(game.StatOceanToxicity)
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// ReflectionText picks the reflection prose for a decree, or "" when the
// catalog has none for it.
func ReflectionText(catalog *game.Catalog, action game.Action) string {
	r, ok := catalog.Reflection(action.ID)
	if !ok {
		return ""
	}
	switch ToneOf(action.Effects) {
	case Positive:
		if r.Positive != "" {
			return r.Positive
		}
	case Negative:
		if r.Negative != "" {
			return r.Negative
		}
	}
	return r.Neutral
}

// Report describes the generation in rec for the Guardian who follows.
func Report(catalog *game.Catalog, rec game.TurnRecord) []string {
	var lines []string

	if rec.EventName != "" {
		lines = append(lines, "Major event: "+rec.EventName)
		if rec.BranchLabel != "" {
			lines = append(lines, "  The Guardian chose: "+rec.BranchLabel)
		}
		if len(rec.EventEffects) > 0 {
			lines = append(lines, "  "+rec.EventEffects.String())
		}
	}

	if rec.ActionID == "" {
		lines = append(lines,
			"The previous generation chose to maintain the status quo.",
			"  No decree was issued and the world kept to its course.",
		)
	} else {
		lines = append(lines, "Decree enacted: "+rec.ActionName)
		if action, ok := catalog.Action(rec.ActionID); ok {
			effects := append(game.Effects{{Stat: game.StatMoney, Delta: -action.Cost}}, action.Effects...)
			lines = append(lines, "  "+consequences(effects))
			if text := ReflectionText(catalog, action); text != "" {
				lines = append(lines, "  "+text)
			}
		}
	}

	lines = append(lines, "Over the generation: "+changes(rec.Before, rec.After))
	return lines
}

func consequences(effects game.Effects) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		if e.Delta == 0 && !e.Multiply {
			continue
		}
		if e.Stat == game.StatMoney {
			parts = append(parts, "Treasury "+Signed(e.Delta))
			continue
		}
		parts = append(parts, e.String())
	}
	if len(parts) == 0 {
		return "no measurable effect"
	}
	return strings.Join(parts, ", ")
}

func changes(before, after game.Stats) string {
	diff := after.Diff(before)
	parts := make([]string, 0, 4)
	for _, stat := range []game.Stat{game.StatMoney, game.StatOceanToxicity, game.StatFishHealth, game.StatPublicSupport} {
		parts = append(parts, fmt.Sprintf("%s %s", stat.Label(), Signed(diff[stat])))
	}
	return strings.Join(parts, ", ")
}
