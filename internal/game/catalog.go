package game

import (
	"fmt"
	"strings"
)

type ActionID string

type EventID string

type Era string

const (
	EraEarly          Era = "early"
	EraDiscovery      Era = "discovery"
	EraAwakening      Era = "awakening"
	EraTransformation Era = "transformation"
	EraLate           Era = "late"
)

// Unlock gates an action on the run so far. MaxYear is exclusive and
// zero means the action never locks again.
type Unlock struct {
	MinYear    int        `json:"min_year"`
	MaxYear    int        `json:"max_year,omitempty"`
	MinSupport float64    `json:"min_support,omitempty"`
	Requires   []ActionID `json:"requires,omitempty"`
}

func (u Unlock) Allows(s *GameState) bool {
	if s.Year < u.MinYear {
		return false
	}
	if u.MaxYear > 0 && s.Year >= u.MaxYear {
		return false
	}
	if s.PublicSupport < u.MinSupport {
		return false
	}
	for _, id := range u.Requires {
		if !s.Used(id) {
			return false
		}
	}
	return true
}

type Action struct {
	ID          ActionID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        float64  `json:"cost"`
	Unlock      Unlock   `json:"unlock"`
	Effects     Effects  `json:"effects"`
}

type EventKind string

const (
	EventAutomatic   EventKind = "automatic"
	EventInteractive EventKind = "interactive"
)

// Choice is one branch of an interactive event.
type Choice struct {
	Label   string  `json:"label"`
	Effects Effects `json:"effects"`
}

type Event struct {
	ID      EventID   `json:"id"`
	Name    string    `json:"name"`
	Text    string    `json:"text"`
	Kind    EventKind `json:"kind"`
	YearMin int       `json:"year_min"`
	YearMax int       `json:"year_max"`
	Weight  int       `json:"weight"`
	Effects Effects   `json:"effects,omitempty"`
	Choices []Choice  `json:"choices,omitempty"`
}

// ActiveAt reports whether year falls in [YearMin, YearMax).
func (e Event) ActiveAt(year int) bool {
	return year >= e.YearMin && year < e.YearMax
}

func (e Event) Interactive() bool {
	return e.Kind == EventInteractive
}

type LoreDrop struct {
	ID     string `json:"id"`
	Era    Era    `json:"era"`
	Weight int    `json:"weight"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// Reflection is the hindsight prose shown one generation after a decree.
type Reflection struct {
	ActionID ActionID `json:"action_id"`
	Positive string   `json:"positive"`
	Negative string   `json:"negative"`
	Neutral  string   `json:"neutral"`
}

// Catalog is the read-only content a run draws from.
type Catalog struct {
	Actions     []Action
	Events      []Event
	Lore        []LoreDrop
	Reflections []Reflection
}

func (c *Catalog) Action(id ActionID) (Action, bool) {
	for _, a := range c.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

func (c *Catalog) Event(id EventID) (Event, bool) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (c *Catalog) Reflection(id ActionID) (Reflection, bool) {
	for _, r := range c.Reflections {
		if r.ActionID == id {
			return r, true
		}
	}
	return Reflection{}, false
}

// Validate checks the catalog against the run configuration and returns a
// *ContentValidationError listing every problem found.
func (c *Catalog) Validate(cfg Config) error {
	var problems []Problem
	add := func(source, id, format string, args ...any) {
		problems = append(problems, Problem{Source: source, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	actionIDs := make(map[ActionID]bool, len(c.Actions))
	for _, a := range c.Actions {
		id := string(a.ID)
		if strings.TrimSpace(id) == "" {
			add("actions", id, "missing id")
			continue
		}
		if actionIDs[a.ID] {
			add("actions", id, "duplicate id")
		}
		actionIDs[a.ID] = true
		if strings.TrimSpace(a.Name) == "" {
			add("actions", id, "missing name")
		}
		if a.Cost < 0 || a.Cost > cfg.MaxActionCost {
			add("actions", id, "cost %.0f outside [0,%.0f]", a.Cost, cfg.MaxActionCost)
		}
		if a.Unlock.MaxYear > 0 && a.Unlock.MaxYear <= a.Unlock.MinYear {
			add("actions", id, "unlock window [%d,%d) is empty", a.Unlock.MinYear, a.Unlock.MaxYear)
		}
		for _, msg := range effectProblems(a.Effects) {
			add("actions", id, "%s", msg)
		}
	}
	for _, a := range c.Actions {
		for _, req := range a.Unlock.Requires {
			if !actionIDs[req] {
				add("actions", string(a.ID), "requires unknown action %q", req)
			}
			if req == a.ID {
				add("actions", string(a.ID), "requires itself")
			}
		}
	}

	eventIDs := make(map[EventID]bool, len(c.Events))
	for _, e := range c.Events {
		id := string(e.ID)
		if strings.TrimSpace(id) == "" {
			add("events", id, "missing id")
			continue
		}
		if eventIDs[e.ID] {
			add("events", id, "duplicate id")
		}
		eventIDs[e.ID] = true
		if e.YearMin >= e.YearMax {
			add("events", id, "year range [%d,%d) is empty", e.YearMin, e.YearMax)
		}
		if e.Weight < 1 {
			add("events", id, "weight must be at least 1")
		}
		switch e.Kind {
		case EventAutomatic:
			if len(e.Choices) > 0 {
				add("events", id, "automatic event has choices")
			}
			for _, msg := range effectProblems(e.Effects) {
				add("events", id, "%s", msg)
			}
		case EventInteractive:
			if len(e.Choices) < 2 || len(e.Choices) > 3 {
				add("events", id, "interactive event needs 2-3 choices, has %d", len(e.Choices))
			}
			for i, ch := range e.Choices {
				if strings.TrimSpace(ch.Label) == "" {
					add("events", id, "choice %d has no label", i+1)
				}
				for _, msg := range effectProblems(ch.Effects) {
					add("events", id, "choice %d: %s", i+1, msg)
				}
			}
		default:
			add("events", id, "unknown kind %q", e.Kind)
		}
	}

	eras := make(map[Era]bool, len(cfg.Eras))
	for _, band := range cfg.Eras {
		eras[band.Era] = true
	}
	loreIDs := make(map[string]bool, len(c.Lore))
	for _, l := range c.Lore {
		if strings.TrimSpace(l.ID) == "" {
			add("lore", l.ID, "missing id")
			continue
		}
		if loreIDs[l.ID] {
			add("lore", l.ID, "duplicate id")
		}
		loreIDs[l.ID] = true
		if !eras[l.Era] {
			add("lore", l.ID, "unknown era %q", l.Era)
		}
		if l.Weight < 1 {
			add("lore", l.ID, "weight must be at least 1")
		}
	}

	seen := make(map[ActionID]bool, len(c.Reflections))
	for _, r := range c.Reflections {
		if !actionIDs[r.ActionID] {
			add("reflections", string(r.ActionID), "unknown action")
		}
		if seen[r.ActionID] {
			add("reflections", string(r.ActionID), "duplicate reflection")
		}
		seen[r.ActionID] = true
	}

	if len(problems) > 0 {
		return &ContentValidationError{Problems: problems}
	}
	return nil
}

func effectProblems(effects Effects) []string {
	var out []string
	for _, e := range effects {
		known := false
		for _, s := range AllStats {
			if e.Stat == s {
				known = true
				break
			}
		}
		if !known {
			out = append(out, fmt.Sprintf("unknown stat %q", e.Stat))
			continue
		}
		if e.Multiply {
			if e.Stat != StatPollutionGrowth {
				out = append(out, fmt.Sprintf("multiplier not allowed on %s", e.Stat))
			} else if e.Delta < 0 {
				out = append(out, "negative pollution growth multiplier")
			}
		}
	}
	return out
}
