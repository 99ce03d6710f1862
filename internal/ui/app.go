package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/appengine-ltd/planet-aqua/internal/diary"
	"github.com/appengine-ltd/planet-aqua/internal/game"
	"github.com/appengine-ltd/planet-aqua/internal/parser"
	"github.com/appengine-ltd/planet-aqua/internal/ui/theme"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg AppConfig
	seq *game.Sequencer
	log *zap.Logger
}

func NewApp(cfg AppConfig, seq *game.Sequencer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{cfg: cfg, seq: seq, log: logger.Named("tui")}
}

func (a *App) Run() error {
	m := newGameModel(a.cfg, a.seq, a.log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type screen int

const (
	screenIntro screen = iota
	screenTurn
	screenHelp
	screenEnd
)

type gameModel struct {
	cfg    AppConfig
	seq    *game.Sequencer
	parser *parser.Parser
	log    *zap.Logger
	screen screen

	input  string
	status string
	width  int
	height int
}

func newGameModel(cfg AppConfig, seq *game.Sequencer, logger *zap.Logger) gameModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gameModel{
		cfg:    cfg,
		seq:    seq,
		parser: parser.New(),
		log:    logger,
		screen: screenIntro,
		width:  80,
		height: 40,
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenIntro:
			if msg.Type == tea.KeyEnter {
				m.screen = screenTurn
			}
			return m, nil
		case screenHelp:
			m.screen = screenTurn
			return m, nil
		case screenEnd:
			switch msg.String() {
			case "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateTurn(msg)
	}
	return m, nil
}

func (m gameModel) updateTurn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		m.input = ""
		m.status = ""
		return m, nil
	case tea.KeyBackspace:
		if m.input != "" {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m gameModel) submitInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input)
	m.input = ""
	if raw == "" {
		return m, nil
	}
	r := submit(m.seq, m.parser, raw)
	m.log.Debug("input", zap.String("raw", raw), zap.Bool("advanced", r.Advanced))
	if r.Quit {
		return m, tea.Quit
	}
	m.status = r.Message
	if r.Message == helpText {
		m.screen = screenHelp
		m.status = ""
	}
	if m.seq.Phase().Terminal() {
		m.screen = screenEnd
		m.status = ""
	}
	return m, nil
}

func (m gameModel) View() string {
	switch m.screen {
	case screenIntro:
		return m.introView()
	case screenHelp:
		return theme.Section.Render(helpText) + "\n" + theme.Muted.Render("any key to return")
	case screenEnd:
		return m.endView()
	default:
		return m.turnView()
	}
}

func (m gameModel) introView() string {
	title := theme.Title.Render("PLANET AQUA")
	ver := theme.Muted.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))
	body := theme.Body.Render(diary.Intro())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		ver,
		"",
		body,
		"",
		theme.Muted.Render("Enter to open the diary, ctrl+c to quit"),
	)
}

func (m gameModel) turnView() string {
	sections := turnSections(m.seq)
	blocks := make([]string, 0, len(sections)+3)
	for i, s := range sections {
		if i == 0 {
			blocks = append(blocks, theme.Heading.Render(s.Title))
			continue
		}
		blocks = append(blocks, renderSection(s, m.contentWidth()))
	}

	st := m.seq.State().Stats
	blocks = append(blocks, renderOceanANSI(st, m.contentWidth()/2, 8), gaugeCaption(st))

	prompt := theme.Label.Render(promptFor(m.seq)+" > ") + theme.Body.Render(m.input) + theme.Muted.Render("█")
	blocks = append(blocks, prompt)
	if m.status != "" {
		blocks = append(blocks, theme.Warning.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m gameModel) endView() string {
	sections := endingSections(m.seq)
	blocks := make([]string, 0, len(sections)+1)
	style := theme.Bad
	if m.seq.Outcome().Status == game.OutcomeWon {
		style = theme.Good
	}
	for i, s := range sections {
		if i == 0 {
			blocks = append(blocks, style.Render(s.Title), theme.Body.Render(strings.Join(s.Lines, "\n")))
			continue
		}
		blocks = append(blocks, renderSection(s, m.contentWidth()))
	}
	blocks = append(blocks, theme.Muted.Render("q or Enter to leave"))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m gameModel) contentWidth() int {
	if m.width <= 4 {
		return 76
	}
	return m.width - 4
}

func gaugeCaption(s game.Stats) string {
	return strings.Join([]string{
		theme.StatStyle(s.OceanToxicity, true).Render(fmt.Sprintf("toxicity %.0f%%", s.OceanToxicity)),
		theme.StatStyle(s.FishHealth, false).Render(fmt.Sprintf("marine life %.0f%%", s.FishHealth)),
		theme.StatStyle(s.PublicSupport, false).Render(fmt.Sprintf("trust %.0f%%", s.PublicSupport)),
	}, "  ")
}

func renderSection(s section, width int) string {
	lines := make([]string, 0, len(s.Lines)+1)
	if s.Title != "" {
		lines = append(lines, theme.Title.Render(s.Title))
	}
	for _, line := range s.Lines {
		switch s.Kind {
		case sectionChoices:
			if strings.HasSuffix(line, "[cannot afford]") {
				lines = append(lines, theme.Disabled.Render(line))
				continue
			}
			lines = append(lines, theme.Body.Render(line))
		case sectionStats:
			lines = append(lines, theme.Label.Render(line))
		default:
			lines = append(lines, theme.Body.Render(line))
		}
	}
	return theme.Section.Width(width).Render(strings.Join(lines, "\n"))
}
