package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) registerCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type candidate struct {
	Canonical string
	Index     int
	Score     float64
	Source    string
}

// matchCommand scores the whole input against every registered phrase.
// Commands take no arguments, so a phrase must cover the input.
func (r *Registry) matchCommand(tokens []string) (candidate, []candidate) {
	if len(tokens) == 0 {
		return candidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]candidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}

		if in == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != phrase.canonical {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, candidate{Canonical: phrase.canonical, Score: score, Source: source})
			continue
		}

		if len(tokens) == 1 && len(phrase.tokens) == 1 && len(in) >= 2 && strings.HasPrefix(phrase.alias, in) {
			cands = append(cands, candidate{Canonical: phrase.canonical, Score: 0.9, Source: "prefix"})
			continue
		}

		// Fuzzy: only when there was no exact/prefix hit for this phrase.
		if len(tokens) != len(phrase.tokens) || len(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != phrase.canonical {
			score += 0.03
		}
		cands = append(cands, candidate{Canonical: phrase.canonical, Score: score, Source: "lev"})
	}
	return rank(cands, func(c candidate) string { return c.Canonical })
}

// matchOption scores the input against the names of the options on
// screen. Index in the result is 1-based.
func matchOption(tokens []string, options []string) (candidate, []candidate) {
	if len(tokens) == 0 || len(options) == 0 {
		return candidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]candidate, 0, len(options))
	for i, raw := range options {
		name := normaliseInput(raw)
		if name == "" {
			continue
		}
		c := candidate{Canonical: name, Index: i + 1}
		nameTokens := tokenise(name)

		switch {
		case in == name:
			c.Score, c.Source = 1.0, "exact"
		case len(in) >= 3 && strings.HasPrefix(name, in):
			c.Score, c.Source = 0.9, "prefix"
		case coversTokens(tokens, nameTokens):
			c.Score, c.Source = 0.85, "tokens"
		default:
			dist := levenshtein.ComputeDistance(in, name)
			if len(in) >= 3 && dist <= levenshteinLimit(len(name)) {
				c.Score, c.Source = 0.72-(0.08*float64(dist)), "lev"
				break
			}
			hits := fuzzyTokenHits(tokens, nameTokens)
			if hits == 0 {
				continue
			}
			c.Score = 0.5 + 0.1*float64(hits)/float64(len(tokens))
			c.Source = "lev-token"
		}
		cands = append(cands, c)
	}
	return rank(cands, func(c candidate) string { return fmt.Sprintf("%03d", c.Index) })
}

// coversTokens reports whether every input token of three or more letters
// starts one of the name's words.
func coversTokens(in, name []string) bool {
	matched := 0
	for _, t := range in {
		if len(t) < 3 {
			continue
		}
		found := false
		for _, n := range name {
			if strings.HasPrefix(n, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		matched++
	}
	return matched > 0
}

func fuzzyTokenHits(in, name []string) int {
	hits := 0
	for _, t := range in {
		if len(t) < 4 {
			continue
		}
		for _, n := range name {
			if levenshtein.ComputeDistance(t, n) <= levenshteinLimit(len(n))-1 {
				hits++
				break
			}
		}
	}
	return hits
}

func rank(cands []candidate, key func(candidate) string) (candidate, []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return key(cands[i]) < key(cands[j])
		}
		return cands[i].Score > cands[j].Score
	})
	if len(cands) == 0 {
		return candidate{}, nil
	}
	best := cands[0]
	alts := make([]candidate, 0, 4)
	seen := map[string]bool{key(best): true}
	for _, c := range cands[1:] {
		if seen[key(c)] {
			continue
		}
		seen[key(c)] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "?", "commands", "what can i do"}, Kind: Help},
		{Canonical: "hold", Aliases: []string{"wait", "pass", "skip", "status quo", "maintain the status quo", "wait and observe", "do nothing", "none"}, Kind: Hold},
		{Canonical: "stats", Aliases: []string{"status", "state", "numbers", "report"}, Kind: Stats},
		{Canonical: "quit", Aliases: []string{"q", "exit", "bye", "give up", "resign"}, Kind: Quit},
	}
	for _, cmd := range commands {
		r.registerCommand(cmd)
	}
	return r
}
