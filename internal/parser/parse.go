package parser

import "fmt"

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

// Parse maps one line of player input onto the choice described by ctx.
// Numbers and letters pick by position; anything else is matched against
// the commands and then the option names.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: choicePrompt(ctx)}
		return intent
	}

	if malformedNumber(raw) {
		intent.Clarify = &ClarifyQuestion{Prompt: "I couldn't match that. " + choicePrompt(ctx)}
		return intent
	}

	tokens := stripFiller(tokenise(intent.Normalised))

	// 1) Positional pick
	if len(tokens) == 1 {
		if n, ok := indexToken(tokens[0], len(ctx.Options)); ok {
			return p.positional(ctx, intent, n)
		}
	}

	// 2) Commands and option names
	cmd, cmdAlts := p.registry.matchCommand(tokens)
	opt, optAlts := matchOption(tokens, ctx.Options)
	if cmd.Canonical != "" && cmd.Score >= opt.Score {
		if def, ok := p.registry.command(cmd.Canonical); ok && (def.Kind != Hold || ctx.HoldAllowed) {
			if len(cmdAlts) > 0 && cmd.Score-cmdAlts[0].Score < 0.05 && cmdAlts[0].Score > 0.65 {
				intent.Clarify = &ClarifyQuestion{
					Prompt:  "Did you mean:",
					Options: []Intent{p.commandIntent(raw, cmd), p.commandIntent(raw, cmdAlts[0])},
				}
				return intent
			}
			out := p.commandIntent(raw, cmd)
			out.Normalised = intent.Normalised
			return out
		}
	}

	if opt.Index == 0 || opt.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't match that. " + choicePrompt(ctx),
		}
		return intent
	}

	if len(optAlts) > 0 && opt.Score-optAlts[0].Score < 0.05 {
		options := []Intent{pickIntent(raw, ctx, opt), pickIntent(raw, ctx, optAlts[0])}
		for _, alt := range optAlts[1:] {
			if opt.Score-alt.Score >= 0.05 {
				break
			}
			options = append(options, pickIntent(raw, ctx, alt))
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
		intent.Confidence = 0.45
		return intent
	}

	out := pickIntent(raw, ctx, opt)
	out.Normalised = intent.Normalised
	if out.Confidence < 0.52 {
		out.Clarify = &ClarifyQuestion{
			Prompt:  "Not sure about that one. Did you mean:",
			Options: []Intent{pickIntent(raw, ctx, opt)},
		}
	}
	return out
}

func (p *Parser) positional(ctx ParseContext, intent Intent, n int) Intent {
	switch {
	case n >= 1 && n <= len(ctx.Options):
		intent.Kind = Pick
		intent.Verb = "pick"
		intent.Index = n
		intent.Confidence = 1
	case ctx.HoldAllowed && n == len(ctx.Options)+1:
		intent.Kind = Hold
		intent.Verb = "hold"
		intent.Confidence = 1
	default:
		intent.Clarify = &ClarifyQuestion{Prompt: choicePrompt(ctx)}
	}
	return intent
}

func (p *Parser) commandIntent(raw string, c candidate) Intent {
	def, _ := p.registry.command(c.Canonical)
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       def.Kind,
		Verb:       def.Canonical,
		Confidence: clampScore(c.Score),
	}
}

func pickIntent(raw string, ctx ParseContext, c candidate) Intent {
	label := c.Canonical
	if c.Index >= 1 && c.Index <= len(ctx.Options) {
		label = ctx.Options[c.Index-1]
	}
	return Intent{
		Raw:        raw,
		Normalised: label,
		Kind:       Pick,
		Verb:       "pick",
		Index:      c.Index,
		Confidence: clampScore(c.Score),
	}
}

func choicePrompt(ctx ParseContext) string {
	n := len(ctx.Options)
	switch {
	case n == 0 && ctx.HoldAllowed:
		return "Nothing can be enacted. Type hold to let the generation pass."
	case n == 0:
		return "Type help for commands."
	case ctx.HoldAllowed:
		return fmt.Sprintf("Choose 1-%d, or %d to hold.", n, n+1)
	default:
		return fmt.Sprintf("Choose 1-%d or %s.", n, letters(n))
	}
}

func letters(n int) string {
	if n <= 0 {
		return ""
	}
	if n > 26 {
		n = 26
	}
	return fmt.Sprintf("a-%c", 'a'+rune(n-1))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent the way a player could type it.
func IntentToCommandString(intent Intent) string {
	switch intent.Kind {
	case Pick:
		return fmt.Sprintf("%d", intent.Index)
	case Unknown:
		return ""
	default:
		return intent.Kind.String()
	}
}
