// Package content loads the decree, event, lore and reflection tables and
// the run configuration that a game is played from.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/game"
)

const (
	ActionsFile     = "actions.csv"
	EventsFile      = "events.csv"
	LoreFile        = "lore_drops.csv"
	ReflectionsFile = "reflections.csv"
	ConfigFile      = "config.yaml"
)

//go:embed data
var embedded embed.FS

// Default returns the content shipped with the binary.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return sub
}

// Bundle is everything a run needs from a content directory.
type Bundle struct {
	Catalog *game.Catalog
	Config  game.Config
}

// Load reads the configuration and every content table from fsys. Row
// level problems from all files are gathered into one
// *game.ContentValidationError.
func Load(fsys fs.FS) (*Bundle, error) {
	cfg, err := LoadConfig(fsys)
	if err != nil {
		return nil, err
	}
	catalog, err := LoadCatalog(fsys, cfg)
	if err != nil {
		return nil, err
	}
	return &Bundle{Catalog: catalog, Config: cfg}, nil
}

// LoadCatalog reads the four content tables and validates them against cfg.
func LoadCatalog(fsys fs.FS, cfg game.Config) (*game.Catalog, error) {
	actions, err := readSheet(fsys, ActionsFile, false, "id", "name", "cost")
	if err != nil {
		return nil, err
	}
	events, err := readSheet(fsys, EventsFile, false, "id", "name", "event_type", "year_min", "year_max")
	if err != nil {
		return nil, err
	}
	lore, err := readSheet(fsys, LoreFile, true, "id", "era", "title", "content")
	if err != nil {
		return nil, err
	}
	reflections, err := readSheet(fsys, ReflectionsFile, true, "action_id")
	if err != nil {
		return nil, err
	}

	c := &game.Catalog{
		Actions:     parseActions(actions),
		Events:      parseEvents(events),
		Lore:        parseLore(lore),
		Reflections: parseReflections(reflections),
	}

	var problems []game.Problem
	for _, s := range []*sheet{actions, events, lore, reflections} {
		problems = append(problems, s.problems...)
	}
	if len(problems) > 0 {
		return nil, &game.ContentValidationError{Problems: problems}
	}
	if err := c.Validate(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func parseActions(s *sheet) []game.Action {
	out := make([]game.Action, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, game.Action{
			ID:          game.ActionID(r.get("id")),
			Name:        r.get("name"),
			Description: r.get("description"),
			Cost:        s.floatField(r, "cost"),
			Unlock: game.Unlock{
				MinYear:    s.intField(r, "unlock_year", 0),
				MaxYear:    s.intField(r, "lock_year", 0),
				MinSupport: s.floatField(r, "requires_support"),
				Requires:   splitIDs(r.get("requires")),
			},
			Effects: s.columnEffects(r),
		})
	}
	return out
}

func parseEventKind(raw string) (game.EventKind, bool) {
	switch strings.ToLower(raw) {
	case "auto", "automatic", "":
		return game.EventAutomatic, true
	case "interactive", "crisis":
		return game.EventInteractive, true
	default:
		return "", false
	}
}

var choiceColumns = []string{"a", "b", "c"}

func parseEvents(s *sheet) []game.Event {
	out := make([]game.Event, 0, len(s.rows))
	for _, r := range s.rows {
		id := r.get("id")
		kind, ok := parseEventKind(r.get("event_type"))
		if !ok {
			s.problem(r.line, id, "event_type: %q is not auto or interactive", r.get("event_type"))
		}
		e := game.Event{
			ID:      game.EventID(id),
			Name:    r.get("name"),
			Text:    r.get("text"),
			Kind:    kind,
			YearMin: s.intField(r, "year_min", 0),
			YearMax: s.intField(r, "year_max", 0),
			Weight:  s.intField(r, "weight", 1),
		}

		effects := s.columnEffects(r)
		if kind != game.EventInteractive {
			e.Effects = effects
			out = append(out, e)
			continue
		}
		if len(effects) > 0 {
			s.problem(r.line, id, "interactive event has effect columns; put effects on its choices")
		}
		for _, letter := range choiceColumns {
			label := r.get("choice_" + letter + "_text")
			raw := r.get("choice_" + letter + "_effects")
			if label == "" && raw == "" {
				continue
			}
			choiceEffects, err := parseEffectList(raw)
			if err != nil {
				s.problem(r.line, id, "choice_%s_effects: %v", letter, err)
			}
			e.Choices = append(e.Choices, game.Choice{Label: label, Effects: choiceEffects})
		}
		out = append(out, e)
	}
	return out
}

func parseLore(s *sheet) []game.LoreDrop {
	out := make([]game.LoreDrop, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, game.LoreDrop{
			ID:     r.get("id"),
			Era:    game.Era(strings.ToLower(r.get("era"))),
			Weight: s.intField(r, "weight", 1),
			Title:  r.get("title"),
			Text:   r.get("content"),
		})
	}
	return out
}

func parseReflections(s *sheet) []game.Reflection {
	out := make([]game.Reflection, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, game.Reflection{
			ActionID: game.ActionID(r.get("action_id")),
			Positive: r.get("positive_impact"),
			Negative: r.get("negative_impact"),
			Neutral:  r.get("neutral_impact"),
		})
	}
	return out
}
