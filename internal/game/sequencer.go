package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Phase int

const (
	PhaseInit Phase = iota
	PhaseAwaitingEvent
	PhaseAwaitingBranchChoice
	PhaseAwaitingLoreDrop
	PhaseAwaitingActionChoice
	PhaseResolving
	PhaseEvaluating
	PhaseContinuing
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseAwaitingEvent:
		return "awaiting event"
	case PhaseAwaitingBranchChoice:
		return "awaiting branch choice"
	case PhaseAwaitingLoreDrop:
		return "awaiting lore drop"
	case PhaseAwaitingActionChoice:
		return "awaiting action choice"
	case PhaseResolving:
		return "resolving"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseContinuing:
		return "continuing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Suspended reports whether the sequencer is waiting for player input.
func (p Phase) Suspended() bool {
	return p == PhaseAwaitingBranchChoice || p == PhaseAwaitingActionChoice
}

// Turn holds the draws and choices of the generation in progress.
type Turn struct {
	Generation int
	Year       int
	Era        EraBand
	Event      *Event
	Branch     int // 1-based, 0 until chosen
	Lore       *LoreDrop
	Offer      []Action
	Action     int // 1-based, 0 for holding
	Held       bool
}

// TurnRecord is the history entry for one resolved generation.
type TurnRecord struct {
	Generation   int         `json:"generation"`
	Year         int         `json:"year"`
	Era          Era         `json:"era"`
	EventID      EventID     `json:"event_id,omitempty"`
	EventName    string      `json:"event_name,omitempty"`
	BranchLabel  string      `json:"branch_label,omitempty"`
	EventEffects Effects     `json:"event_effects,omitempty"`
	LoreID       string      `json:"lore_id,omitempty"`
	Offered      []ActionID  `json:"offered,omitempty"`
	ActionID     ActionID    `json:"action_id,omitempty"`
	ActionName   string      `json:"action_name,omitempty"`
	Held         bool        `json:"held"`
	Before       Stats       `json:"before"`
	After        Stats       `json:"after"`
	Drift        DriftResult `json:"drift"`
	Outcome      Outcome     `json:"outcome"`
}

// Sequencer runs one game. It owns the GameState and the RNG; callers
// only observe copies and feed choices at the two suspension points.
type Sequencer struct {
	catalog *Catalog
	cfg     Config
	rng     *RNG
	log     *zap.Logger

	phase   Phase
	state   GameState
	turn    Turn
	history []TurnRecord
	outcome Outcome
}

func NewSequencer(catalog *Catalog, cfg Config, seed int64, logger *zap.Logger) (*Sequencer, error) {
	if catalog == nil {
		return nil, errors.New("nil catalog")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequencer{
		catalog: catalog,
		cfg:     cfg,
		rng:     NewRNG(seed),
		log:     logger.Named("sequencer"),
		phase:   PhaseInit,
		outcome: Outcome{Status: OutcomeContinuing},
	}, nil
}

// Start creates the initial state and runs to the first suspension point.
func (q *Sequencer) Start() error {
	if q.phase != PhaseInit {
		return &InvalidSelectionError{Reason: ReasonWrongPhase, Detail: "run already started"}
	}
	q.state = NewGameState(q.cfg)
	q.phase = PhaseAwaitingEvent
	q.log.Info("run started",
		zap.Int64("seed", q.rng.Seed()),
		zap.Int("generations", q.cfg.Generations),
		zap.Int("actions", len(q.catalog.Actions)),
		zap.Int("events", len(q.catalog.Events)),
	)
	q.Advance()
	return nil
}

func (q *Sequencer) Phase() Phase { return q.phase }

func (q *Sequencer) Config() Config { return q.cfg }

func (q *Sequencer) Catalog() *Catalog { return q.catalog }

func (q *Sequencer) Seed() int64 { return q.rng.Seed() }

func (q *Sequencer) Outcome() Outcome { return q.outcome }

// State returns a copy of the current game state.
func (q *Sequencer) State() GameState { return q.state.Clone() }

// Turn returns the generation in progress.
func (q *Sequencer) Turn() Turn {
	t := q.turn
	t.Offer = append([]Action(nil), q.turn.Offer...)
	return t
}

func (q *Sequencer) History() []TurnRecord {
	return append([]TurnRecord(nil), q.history...)
}

// LastRecord returns the most recently resolved generation, if any.
func (q *Sequencer) LastRecord() (TurnRecord, bool) {
	if len(q.history) == 0 {
		return TurnRecord{}, false
	}
	return q.history[len(q.history)-1], true
}

// ProjectedMoney is the treasury at the moment the decree cost is paid:
// current money after the pending event branch is applied.
func (q *Sequencer) ProjectedMoney() float64 {
	projected := q.state.Clone()
	ApplyEffects(&projected, q.eventEffects())
	return projected.Money
}

// Affordable reports whether the 1-based offer entry can be paid for.
func (q *Sequencer) Affordable(index int) bool {
	if index < 1 || index > len(q.turn.Offer) {
		return false
	}
	return q.ProjectedMoney() >= q.turn.Offer[index-1].Cost
}

// ChooseBranch picks the 1-based branch of the pending interactive event.
func (q *Sequencer) ChooseBranch(index int) error {
	if err := q.expect(PhaseAwaitingBranchChoice, index); err != nil {
		return err
	}
	if index < 1 || index > len(q.turn.Event.Choices) {
		return &InvalidSelectionError{
			Reason: ReasonOutOfRange,
			Index:  index,
			Detail: fmt.Sprintf("choose 1-%d", len(q.turn.Event.Choices)),
		}
	}
	q.turn.Branch = index
	q.log.Debug("branch chosen",
		zap.String("event", string(q.turn.Event.ID)),
		zap.String("choice", q.turn.Event.Choices[index-1].Label),
	)
	q.phase = PhaseAwaitingLoreDrop
	q.Advance()
	return nil
}

// ChooseAction enacts the 1-based offer entry.
func (q *Sequencer) ChooseAction(index int) error {
	if err := q.expect(PhaseAwaitingActionChoice, index); err != nil {
		return err
	}
	if index < 1 || index > len(q.turn.Offer) {
		return &InvalidSelectionError{
			Reason: ReasonOutOfRange,
			Index:  index,
			Detail: fmt.Sprintf("%d decree(s) on offer", len(q.turn.Offer)),
		}
	}
	a := q.turn.Offer[index-1]
	if money := q.ProjectedMoney(); money < a.Cost {
		return &InvalidSelectionError{
			Reason: ReasonUnaffordable,
			Index:  index,
			Detail: fmt.Sprintf("%s costs %.0f, treasury will hold %.0f", a.Name, a.Cost, money),
		}
	}
	q.turn.Action = index
	q.phase = PhaseResolving
	q.Advance()
	return nil
}

// Hold keeps the status quo for this generation: no decree is enacted.
func (q *Sequencer) Hold() error {
	if err := q.expect(PhaseAwaitingActionChoice, 0); err != nil {
		return err
	}
	q.turn.Held = true
	q.phase = PhaseResolving
	q.Advance()
	return nil
}

func (q *Sequencer) expect(phase Phase, index int) error {
	if q.phase.Terminal() {
		return ErrRunOver
	}
	if q.phase != phase {
		return &InvalidSelectionError{
			Reason: ReasonWrongPhase,
			Index:  index,
			Detail: fmt.Sprintf("sequencer is %s", q.phase),
		}
	}
	return nil
}

// Advance runs every transition that needs no input. It is a no-op at a
// suspension point or after the run has ended.
func (q *Sequencer) Advance() {
	for !q.phase.Suspended() && !q.phase.Terminal() {
		switch q.phase {
		case PhaseAwaitingEvent:
			q.drawEvent()
		case PhaseAwaitingLoreDrop:
			q.drawLore()
			q.drawOffer()
		case PhaseResolving:
			q.resolve()
		case PhaseEvaluating:
			q.evaluate()
		case PhaseContinuing:
			q.continueRun()
		default:
			q.log.Error("unexpected phase", zap.Stringer("phase", q.phase))
			return
		}
	}
}

func (q *Sequencer) drawEvent() {
	generation := q.cfg.GenerationOf(q.state.Year)
	q.turn = Turn{
		Generation: generation,
		Year:       q.state.Year,
		Era:        q.cfg.EraFor(generation),
	}
	ev, ok := SelectEvent(q.catalog, q.state.Year, q.rng)
	if !ok {
		q.log.Debug("no event eligible", zap.Int("year", q.state.Year))
		q.phase = PhaseAwaitingLoreDrop
		return
	}
	q.turn.Event = &ev
	q.log.Debug("event drawn", zap.String("event", string(ev.ID)), zap.String("kind", string(ev.Kind)))
	if ev.Interactive() && len(ev.Choices) > 0 {
		q.phase = PhaseAwaitingBranchChoice
		return
	}
	q.phase = PhaseAwaitingLoreDrop
}

func (q *Sequencer) drawLore() {
	lore, ok := SelectLoreDrop(q.catalog, q.turn.Era.Era, q.rng)
	if !ok {
		q.log.Debug("no lore for era", zap.String("era", string(q.turn.Era.Era)))
		return
	}
	q.turn.Lore = &lore
}

func (q *Sequencer) drawOffer() {
	q.turn.Offer = OfferActions(q.catalog, &q.state, q.rng, q.cfg.OfferSize)
	if len(q.turn.Offer) == 0 {
		q.log.Debug("no decrees eligible", zap.Int("year", q.state.Year))
	}
	q.phase = PhaseAwaitingActionChoice
}

func (q *Sequencer) eventEffects() Effects {
	ev := q.turn.Event
	if ev == nil {
		return nil
	}
	if ev.Interactive() {
		if q.turn.Branch < 1 || q.turn.Branch > len(ev.Choices) {
			return nil
		}
		return ev.Choices[q.turn.Branch-1].Effects
	}
	return ev.Effects
}

func (q *Sequencer) resolve() {
	rec := TurnRecord{
		Generation: q.turn.Generation,
		Year:       q.turn.Year,
		Era:        q.turn.Era.Era,
		Before:     q.state.Stats,
		Held:       q.turn.Held,
	}
	for _, a := range q.turn.Offer {
		rec.Offered = append(rec.Offered, a.ID)
	}
	if q.turn.Lore != nil {
		rec.LoreID = q.turn.Lore.ID
	}

	if ev := q.turn.Event; ev != nil {
		effects := q.eventEffects()
		ApplyEffects(&q.state, effects)
		rec.EventID = ev.ID
		rec.EventName = ev.Name
		rec.EventEffects = effects
		q.state.LastEvent = ev.Name
		q.state.LastEventChoice = ""
		if ev.Interactive() && q.turn.Branch > 0 {
			rec.BranchLabel = ev.Choices[q.turn.Branch-1].Label
			q.state.LastEventChoice = rec.BranchLabel
		}
	} else {
		q.state.LastEvent = ""
		q.state.LastEventChoice = ""
	}

	q.state.LastAction = ""
	q.state.LastActionEffects = nil
	if !q.turn.Held && q.turn.Action > 0 {
		a := q.turn.Offer[q.turn.Action-1]
		if err := ApplyAction(&q.state, a); err != nil {
			// ChooseAction checked the projected treasury, so this only
			// happens if content changed underneath us.
			q.log.Error("decree could not be paid", zap.String("action", string(a.ID)), zap.Error(err))
			rec.Held = true
		} else {
			q.state.markUsed(a.ID)
			q.state.LastAction = a.ID
			q.state.LastActionEffects = append(Effects{{Stat: StatMoney, Delta: -a.Cost}}, a.Effects...)
			rec.ActionID = a.ID
			rec.ActionName = a.Name
		}
	}

	rec.Drift = ApplyDrift(&q.state, q.cfg)
	rec.After = q.state.Stats
	q.history = append(q.history, rec)

	q.log.Debug("generation resolved",
		zap.Int("generation", rec.Generation),
		zap.String("event", string(rec.EventID)),
		zap.String("action", string(rec.ActionID)),
		zap.Float64("money", q.state.Money),
		zap.Float64("toxicity", q.state.OceanToxicity),
		zap.Float64("fish", q.state.FishHealth),
		zap.Float64("support", q.state.PublicSupport),
	)
	q.phase = PhaseEvaluating
}

func (q *Sequencer) evaluate() {
	q.outcome = Evaluate(&q.state, q.cfg)
	if n := len(q.history); n > 0 {
		q.history[n-1].Outcome = q.outcome
	}
	switch q.outcome.Status {
	case OutcomeWon:
		q.phase = PhaseWon
	case OutcomeLost:
		q.phase = PhaseLost
	default:
		q.phase = PhaseContinuing
		return
	}
	q.log.Info("run ended",
		zap.String("status", string(q.outcome.Status)),
		zap.String("ending", string(q.outcome.Ending)),
		zap.Int("year", q.state.Year),
		zap.Int("generations_played", len(q.history)),
	)
}

func (q *Sequencer) continueRun() {
	q.state.Year += q.cfg.GenerationLength
	if q.cfg.GenerationOf(q.state.Year) < q.cfg.Generations {
		q.phase = PhaseAwaitingEvent
		return
	}
	q.phase = PhaseEvaluating
}
