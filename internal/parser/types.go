package parser

type IntentKind int

const (
	// Pick selects Intent.Index from the options on screen.
	Pick IntentKind = iota
	Hold
	Help
	Stats
	Quit
	Unknown
)

func (k IntentKind) String() string {
	switch k {
	case Pick:
		return "pick"
	case Hold:
		return "hold"
	case Help:
		return "help"
	case Stats:
		return "stats"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Index      int // 1-based, set for Pick
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext describes the choice the player is being asked to make.
type ParseContext struct {
	Options     []string
	HoldAllowed bool
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	Kind      IntentKind
}
