package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/diary"
	"github.com/appengine-ltd/planet-aqua/internal/game"
)

// section is one titled block of the generation screen. Plain mode prints
// them as-is; the TUI styles them.
type section struct {
	Title string
	Lines []string
	Kind  sectionKind
}

type sectionKind int

const (
	sectionText sectionKind = iota
	sectionStats
	sectionChoices
)

func turnSections(q *game.Sequencer) []section {
	turn := q.Turn()
	cfg := q.Config()
	out := []section{{Title: diary.NewHeading(cfg, turn.Generation).String()}}

	if turn.Lore != nil {
		out = append(out, section{Title: "From the archives: " + turn.Lore.Title, Lines: []string{turn.Lore.Text}})
	}

	if rec, ok := q.LastRecord(); ok {
		out = append(out, section{
			Title: fmt.Sprintf("Generation report: years %d-%d", rec.Year, rec.Year+cfg.GenerationLength),
			Lines: diary.Report(q.Catalog(), rec),
		})
	}

	if ev := turn.Event; ev != nil {
		out = append(out, eventSection(q, ev, turn.Branch))
	}

	out = append(out, section{Title: "The state of Planet Aqua", Lines: statLines(q.State().Stats), Kind: sectionStats})

	if q.Phase() == game.PhaseAwaitingActionChoice {
		out = append(out, offerSection(q, turn.Offer))
	}
	return out
}

func eventSection(q *game.Sequencer, ev *game.Event, branch int) section {
	if !ev.Interactive() {
		return section{
			Title: "World event: " + ev.Name,
			Lines: []string{ev.Text, "Consequences: " + ev.Effects.String()},
		}
	}
	s := section{Title: "Crisis of the depths: " + ev.Name, Lines: []string{ev.Text}}
	if q.Phase() == game.PhaseAwaitingBranchChoice {
		s.Kind = sectionChoices
		s.Lines = append(s.Lines, "How do you respond?")
		for i, ch := range ev.Choices {
			s.Lines = append(s.Lines, fmt.Sprintf("%c. %s (%s)", 'A'+rune(i), ch.Label, ch.Effects))
		}
		return s
	}
	if branch > 0 && branch <= len(ev.Choices) {
		ch := ev.Choices[branch-1]
		s.Lines = append(s.Lines, fmt.Sprintf("You chose: %s (%s)", ch.Label, ch.Effects))
	}
	return s
}

func offerSection(q *game.Sequencer, offer []game.Action) section {
	s := section{Title: "Guardian's decisions", Kind: sectionChoices}
	if len(offer) == 0 {
		s.Lines = append(s.Lines, "No decree can be enacted this generation.")
	}
	for i, a := range offer {
		cost := "Free"
		if a.Cost > 0 {
			cost = "Cost: " + diary.Money(a.Cost)
		}
		line := fmt.Sprintf("%d. %s (%s)", i+1, a.Name, cost)
		if !q.Affordable(i + 1) {
			line += " [cannot afford]"
		}
		s.Lines = append(s.Lines, line)
		if a.Description != "" {
			s.Lines = append(s.Lines, "   "+a.Description)
		}
	}
	s.Lines = append(s.Lines, fmt.Sprintf("%d. Maintain the status quo", len(offer)+1))
	return s
}

func statLines(s game.Stats) []string {
	return []string{
		fmt.Sprintf("Year %d · Treasury %s · Yearly Income %s", s.Year, diary.Money(s.Money), diary.Money(s.YearlyIncome)),
		fmt.Sprintf("Ocean Toxicity %.0f%% · Marine Life %.0f%% · Public Trust %.0f%%", s.OceanToxicity, s.FishHealth, s.PublicSupport),
		fmt.Sprintf("Pollution Growth x%.2f · Ocean %s", s.PollutionGrowthModifier, oceanStatus(s.FishHealth)),
	}
}

func oceanStatus(fish float64) string {
	switch {
	case fish >= 80:
		return "Thriving"
	case fish >= 60:
		return "Healthy"
	case fish >= 40:
		return "Struggling"
	case fish >= 20:
		return "Dying"
	default:
		return "Collapsed"
	}
}

func promptFor(q *game.Sequencer) string {
	switch q.Phase() {
	case game.PhaseAwaitingBranchChoice:
		n := len(q.Turn().Event.Choices)
		return fmt.Sprintf("Respond with a-%c", 'a'+rune(n-1))
	case game.PhaseAwaitingActionChoice:
		n := len(q.Turn().Offer)
		if n == 0 {
			return "Type hold to let the generation pass"
		}
		return fmt.Sprintf("Choose a decree 1-%d, or %d to hold", n, n+1)
	default:
		return ""
	}
}

func endingSections(q *game.Sequencer) []section {
	n := diary.Ending(q.Outcome())
	state := q.State()
	return []section{
		{Title: n.Title, Lines: strings.Split(n.Body, "\n")},
		{Title: "Final record", Lines: statLines(state.Stats), Kind: sectionStats},
		{Lines: []string{
			fmt.Sprintf("%d generations played, %d decrees enacted.", len(q.History()), len(state.UsedActionIDs)),
			fmt.Sprintf("Seed %d. Run again with --seed %d to replay this ocean.", q.Seed(), q.Seed()),
		}},
	}
}

const helpText = `Commands:
  1-9 or a-c    pick a decree or a crisis response by number or letter
  <name>        pick by name, e.g. "river barriers"
  hold          maintain the status quo (also: wait, pass, status quo)
  stats         show the current numbers
  help          show this list
  quit          close the diary`

func plainText(sections []section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(strings.ToUpper(s.Title))
			b.WriteString("\n")
		}
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
