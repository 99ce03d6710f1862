package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/diary"
	"github.com/appengine-ltd/planet-aqua/internal/game"
	"github.com/appengine-ltd/planet-aqua/internal/parser"
	"go.uber.org/zap"
)

// PlainSession plays a run line by line over any reader and writer. Script
// inputs are consumed before the reader.
type PlainSession struct {
	seq    *game.Sequencer
	parser *parser.Parser
	in     *bufio.Scanner
	out    io.Writer
	script []string
	log    *zap.Logger
}

func NewPlainSession(seq *game.Sequencer, in io.Reader, out io.Writer, script []string, logger *zap.Logger) *PlainSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlainSession{
		seq:    seq,
		parser: parser.New(),
		in:     bufio.NewScanner(in),
		out:    out,
		script: append([]string(nil), script...),
		log:    logger.Named("plain"),
	}
}

// ParseScript splits a comma separated list of inputs such as "b,3,hold".
func ParseScript(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Run plays until the run ends, the player quits or input runs out.
func (s *PlainSession) Run() error {
	fmt.Fprintln(s.out, diary.Intro())
	fmt.Fprintln(s.out)

	show := true
	for !s.seq.Phase().Terminal() {
		if show {
			fmt.Fprint(s.out, plainText(turnSections(s.seq)))
			show = false
		}
		fmt.Fprintf(s.out, "\n%s > ", promptFor(s.seq))

		line, ok := s.next()
		if !ok {
			fmt.Fprintln(s.out)
			fmt.Fprintf(s.out, "Input ended in year %d. Seed %d.\n", s.seq.State().Year, s.seq.Seed())
			return s.in.Err()
		}
		fmt.Fprintln(s.out)

		r := submit(s.seq, s.parser, line)
		s.log.Debug("input", zap.String("raw", line), zap.Bool("advanced", r.Advanced))
		if r.Quit {
			fmt.Fprintf(s.out, "The diary is closed in year %d. Seed %d.\n", s.seq.State().Year, s.seq.Seed())
			return nil
		}
		if r.Message != "" {
			fmt.Fprintln(s.out, r.Message)
		}
		show = r.Advanced
	}

	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, plainText(endingSections(s.seq)))
	return nil
}

func (s *PlainSession) next() (string, bool) {
	if len(s.script) > 0 {
		line := s.script[0]
		s.script = s.script[1:]
		fmt.Fprint(s.out, line)
		return line, true
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
