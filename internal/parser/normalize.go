package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '?' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '.' || r == ')' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// fillerWords are dropped from the front of an input before matching, so
// "choose option 2" and "enact the river barriers" work.
var fillerWords = map[string]bool{
	"choose": true,
	"pick":   true,
	"select": true,
	"option": true,
	"number": true,
	"enact":  true,
	"decree": true,
	"the":    true,
}

func stripFiller(tokens []string) []string {
	i := 0
	for i < len(tokens)-1 && fillerWords[tokens[i]] {
		i++
	}
	return tokens[i:]
}

// malformedNumber reports input like "-1", "#2" or "2!" where a number is
// glued to punctuation. Normalisation would otherwise strip it to a clean pick.
func malformedNumber(raw string) bool {
	for _, field := range strings.Fields(raw) {
		if !strings.ContainsAny(field, "0123456789") {
			continue
		}
		if _, err := strconv.ParseUint(field, 10, 64); err != nil {
			return true
		}
	}
	return false
}

// indexToken maps "3" or "c" to a 1-based index. Letters only count when
// they fall inside the option list.
func indexToken(token string, options int) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'z' {
		n := int(token[0]-'a') + 1
		if n <= options {
			return n, true
		}
	}
	return 0, false
}
