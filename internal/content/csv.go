package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/game"
)

// row is one CSV record addressed by header name.
type row struct {
	line   int
	index  map[string]int
	fields []string
}

func (r row) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// sheet collects the rows of one file and the problems found reading them.
type sheet struct {
	source   string
	rows     []row
	problems []game.Problem
}

func (s *sheet) problem(line int, id, format string, args ...any) {
	s.problems = append(s.problems, game.Problem{
		Source:  s.source,
		Line:    line,
		ID:      id,
		Message: fmt.Sprintf(format, args...),
	})
}

// readSheet reads name from fsys. A missing optional file yields an empty
// sheet; required columns missing from the header are reported once.
func readSheet(fsys fs.FS, name string, optional bool, required ...string) (*sheet, error) {
	s := &sheet{source: name}
	f, err := fsys.Open(name)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		s.problem(1, "", "empty file")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			s.problem(1, "", "missing column %q", col)
		}
	}
	if len(s.problems) > 0 {
		return s, nil
	}

	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				s.problem(perr.Line, "", "%v", perr.Err)
				continue
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if blank(fields) {
			continue
		}
		line, _ := r.FieldPos(0)
		s.rows = append(s.rows, row{line: line, index: index, fields: fields})
	}
	return s, nil
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (s *sheet) intField(r row, column string, fallback int) int {
	raw := r.get(column)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.problem(r.line, r.get("id"), "%s: %q is not a whole number", column, raw)
		return fallback
	}
	return n
}

func (s *sheet) floatField(r row, column string) float64 {
	raw := r.get(column)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.problem(r.line, r.get("id"), "%s: %q is not a number", column, raw)
		return 0
	}
	return n
}

// effectColumns are the fixed per-stat delta columns shared by actions and
// automatic events.
var effectColumns = []struct {
	column string
	stat   game.Stat
}{
	{"effect_money", game.StatMoney},
	{"effect_ocean_toxicity", game.StatOceanToxicity},
	{"effect_fish", game.StatFishHealth},
	{"effect_support", game.StatPublicSupport},
	{"effect_yearly_income", game.StatYearlyIncome},
	{"effect_pollution_growth", game.StatPollutionGrowth},
}

func (s *sheet) columnEffects(r row) game.Effects {
	var out game.Effects
	for _, ec := range effectColumns {
		raw := r.get(ec.column)
		if raw == "" {
			continue
		}
		e, err := parseDelta(ec.stat, raw)
		if err != nil {
			s.problem(r.line, r.get("id"), "%s: %v", ec.column, err)
			continue
		}
		if e.Delta == 0 && !e.Multiply {
			continue
		}
		out = append(out, e)
	}
	return out
}

// parseEffectList reads "stat:delta;stat:delta". A delta written as "x0.8"
// multiplies instead of adding.
func parseEffectList(raw string) (game.Effects, error) {
	var out game.Effects
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("effect %q is not stat:delta", part)
		}
		stat, err := game.ParseStat(name)
		if err != nil {
			return nil, err
		}
		e, err := parseDelta(stat, value)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parseDelta(stat game.Stat, raw string) (game.Effect, error) {
	raw = strings.TrimSpace(raw)
	e := game.Effect{Stat: stat}
	if rest, ok := strings.CutPrefix(strings.ToLower(raw), "x"); ok {
		e.Multiply = true
		raw = rest
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(raw, "+"), 64)
	if err != nil {
		return game.Effect{}, fmt.Errorf("%q is not a number", raw)
	}
	e.Delta = v
	return e, nil
}

func splitIDs(raw string) []game.ActionID {
	var out []game.ActionID
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == '|' }) {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, game.ActionID(id))
		}
	}
	return out
}
