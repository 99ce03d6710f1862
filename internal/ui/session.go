package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/game"
	"github.com/appengine-ltd/planet-aqua/internal/parser"
)

// choiceContext describes what the sequencer is waiting for, in the terms
// the parser understands.
func choiceContext(q *game.Sequencer) parser.ParseContext {
	switch q.Phase() {
	case game.PhaseAwaitingBranchChoice:
		ev := q.Turn().Event
		labels := make([]string, 0, len(ev.Choices))
		for _, ch := range ev.Choices {
			labels = append(labels, ch.Label)
		}
		return parser.ParseContext{Options: labels}
	case game.PhaseAwaitingActionChoice:
		offer := q.Turn().Offer
		names := make([]string, 0, len(offer))
		for _, a := range offer {
			names = append(names, a.Name)
		}
		return parser.ParseContext{Options: names, HoldAllowed: true}
	default:
		return parser.ParseContext{}
	}
}

type reply struct {
	Message  string
	Quit     bool
	Advanced bool
}

// submit parses one line of input and feeds it to the sequencer.
func submit(q *game.Sequencer, p *parser.Parser, raw string) reply {
	intent := p.Parse(choiceContext(q), raw)
	if intent.Clarify != nil {
		return reply{Message: clarifyText(intent.Clarify)}
	}

	var err error
	switch intent.Kind {
	case parser.Help:
		return reply{Message: helpText}
	case parser.Stats:
		return reply{Message: strings.Join(statLines(q.State().Stats), "\n")}
	case parser.Quit:
		return reply{Quit: true}
	case parser.Hold:
		err = q.Hold()
	case parser.Pick:
		if q.Phase() == game.PhaseAwaitingBranchChoice {
			err = q.ChooseBranch(intent.Index)
		} else {
			err = q.ChooseAction(intent.Index)
		}
	default:
		return reply{Message: "I couldn't match that. Type help for commands."}
	}
	if err != nil {
		return reply{Message: selectionMessage(err)}
	}
	return reply{Advanced: true}
}

func clarifyText(c *parser.ClarifyQuestion) string {
	if len(c.Options) == 0 {
		return c.Prompt
	}
	lines := []string{c.Prompt}
	for _, o := range c.Options {
		cmd := parser.IntentToCommandString(o)
		if o.Kind == parser.Pick {
			lines = append(lines, fmt.Sprintf("  %s: %s", cmd, o.Normalised))
			continue
		}
		lines = append(lines, "  "+cmd)
	}
	return strings.Join(lines, "\n")
}

func selectionMessage(err error) string {
	var sel *game.InvalidSelectionError
	switch {
	case errors.Is(err, game.ErrRunOver):
		return "The diary is closed."
	case errors.As(err, &sel) && sel.Reason == game.ReasonUnaffordable:
		return fmt.Sprintf("The treasury cannot cover that. %s.", sel.Detail)
	case errors.As(err, &sel) && sel.Reason == game.ReasonOutOfRange:
		return fmt.Sprintf("No such option, %s.", sel.Detail)
	default:
		return err.Error()
	}
}
