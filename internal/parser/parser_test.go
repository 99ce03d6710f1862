package parser

import "testing"

var decrees = ParseContext{
	Options: []string{
		"Ban Single-Use Plastic Bags",
		"River Interceptor Barriers",
		"Public Awareness Campaign",
		"Emergency Ocean Cleanup",
		"Subsidize Fishing Industry",
	},
	HoldAllowed: true,
}

var branches = ParseContext{
	Options: []string{
		"Ban fishing in affected areas",
		"Launch public awareness campaign",
		"Downplay the findings",
	},
}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  HOLD  ", want: "hold"},
		{in: "single-use   BAGS!!", want: "single use bags"},
		{in: "2)", want: "2"},
		{in: "help?", want: "help?"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestPositionalPicks(t *testing.T) {
	p := New()
	tests := []struct {
		name  string
		ctx   ParseContext
		in    string
		kind  IntentKind
		index int
	}{
		{name: "number", ctx: decrees, in: "2", kind: Pick, index: 2},
		{name: "with filler", ctx: decrees, in: "choose option 3", kind: Pick, index: 3},
		{name: "hold slot", ctx: decrees, in: "6", kind: Hold},
		{name: "out of range", ctx: decrees, in: "9", kind: Unknown},
		{name: "zero", ctx: decrees, in: "0", kind: Unknown},
		{name: "letter", ctx: branches, in: "b", kind: Pick, index: 2},
		{name: "letter upper", ctx: branches, in: "C", kind: Pick, index: 3},
		{name: "no hold slot for branches", ctx: branches, in: "4", kind: Unknown},
		{name: "negative", ctx: decrees, in: "-1", kind: Unknown},
		{name: "plus sign", ctx: decrees, in: "+2", kind: Unknown},
		{name: "hash prefix", ctx: decrees, in: "#2", kind: Unknown},
		{name: "trailing bang", ctx: decrees, in: "2!", kind: Unknown},
		{name: "trailing paren", ctx: decrees, in: "1)", kind: Unknown},
		{name: "trailing dot", ctx: decrees, in: "3.", kind: Unknown},
		{name: "filler with negative", ctx: decrees, in: "option -2", kind: Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent := p.Parse(tc.ctx, tc.in)
			if intent.Kind != tc.kind {
				t.Fatalf("Parse(%q) kind=%s want %s", tc.in, intent.Kind, tc.kind)
			}
			if intent.Index != tc.index {
				t.Fatalf("Parse(%q) index=%d want %d", tc.in, intent.Index, tc.index)
			}
			if tc.kind == Unknown && intent.Clarify == nil {
				t.Fatalf("expected clarify for %q", tc.in)
			}
		})
	}
}

func TestCommandAliases(t *testing.T) {
	p := New()
	tests := map[string]IntentKind{
		"hold":             Hold,
		"wait":             Hold,
		"status quo":       Hold,
		"wait and observe": Hold,
		"help":             Help,
		"?":                Help,
		"stats":            Stats,
		"q":                Quit,
		"exit":             Quit,
	}
	for in, want := range tests {
		intent := p.Parse(decrees, in)
		if intent.Kind != want {
			t.Fatalf("Parse(%q) kind=%s want %s", in, intent.Kind, want)
		}
		if intent.Clarify != nil {
			t.Fatalf("did not expect clarify for %q: %+v", in, intent.Clarify)
		}
	}
}

func TestHoldNotOfferedForBranches(t *testing.T) {
	p := New()
	intent := p.Parse(branches, "hold")
	if intent.Kind == Hold {
		t.Fatalf("hold must not be accepted for an event branch")
	}
}

func TestTypoHelppMapsToHelp(t *testing.T) {
	p := New()
	intent := p.Parse(decrees, "helpp")
	if intent.Kind != Help {
		t.Fatalf("expected help, got %s", intent.Kind)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestOptionNameMatching(t *testing.T) {
	p := New()
	tests := []struct {
		in    string
		index int
	}{
		{in: "River Interceptor Barriers", index: 2},
		{in: "river", index: 2},
		{in: "emergency cleanup", index: 4},
		{in: "enact the awareness campaign", index: 3},
		{in: "interceptr", index: 2},
	}
	for _, tc := range tests {
		intent := p.Parse(decrees, tc.in)
		if intent.Kind != Pick || intent.Index != tc.index {
			t.Fatalf("Parse(%q) = %s/%d want pick/%d", tc.in, intent.Kind, intent.Index, tc.index)
		}
		if intent.Clarify != nil {
			t.Fatalf("did not expect clarify for %q: %+v", tc.in, intent.Clarify)
		}
	}
}

func TestBranchNameMatching(t *testing.T) {
	p := New()
	intent := p.Parse(branches, "downplay")
	if intent.Kind != Pick || intent.Index != 3 {
		t.Fatalf("expected branch 3, got %s/%d", intent.Kind, intent.Index)
	}
}

func TestAmbiguityReturnsClarify(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Options:     []string{"Surface Cleanup Operations", "Emergency Ocean Cleanup"},
		HoldAllowed: true,
	}
	intent := p.Parse(ctx, "cleanup")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for ambiguous cleanup")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 clarify options, got %d", len(intent.Clarify.Options))
	}
	if intent.Clarify.Options[0].Index != 1 || intent.Clarify.Options[1].Index != 2 {
		t.Fatalf("expected options in screen order, got %+v", intent.Clarify.Options)
	}
}

func TestGibberishAsksAgain(t *testing.T) {
	p := New()
	intent := p.Parse(decrees, "xyzzy plugh")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown with clarify, got %+v", intent)
	}
}

func TestEmptyInputPrompts(t *testing.T) {
	p := New()
	intent := p.Parse(decrees, "   ")
	if intent.Clarify == nil || intent.Clarify.Prompt != "Choose 1-5, or 6 to hold." {
		t.Fatalf("unexpected prompt: %+v", intent.Clarify)
	}
}

func TestIntentToCommandString(t *testing.T) {
	if got := IntentToCommandString(Intent{Kind: Pick, Index: 4}); got != "4" {
		t.Fatalf("pick rendered as %q", got)
	}
	if got := IntentToCommandString(Intent{Kind: Hold}); got != "hold" {
		t.Fatalf("hold rendered as %q", got)
	}
	if got := IntentToCommandString(Intent{Kind: Unknown}); got != "" {
		t.Fatalf("unknown rendered as %q", got)
	}
}
