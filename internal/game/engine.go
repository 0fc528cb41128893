package game

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"potionhouse/internal/story"
)

// Node ids with presentation side effects. The blackout pair drives the
// narrative black screen during the day-4 arrest; the knock nodes tell the
// renderer to shake the scene.
const (
	blackoutOnNodeID  = "d4_4"
	blackoutOffNodeID = "d4_8"
)

// KnockNodeIDs mark nodes during which something is pounding on the door.
var KnockNodeIDs = map[string]bool{
	"d1_4": true,
	"d4_4": true,
}

const finalDay = 4

// Recorder receives the engine's append-only session record. Implementations
// must not block; failures are the recorder's problem, never the engine's.
type Recorder interface {
	RecordLine(speaker, text string)
	RecordBrew(day int, ingredients []string, outcome string)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder attaches a session recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.rec = r }
}

// WithTracer attaches an OpenTelemetry tracer; every intent becomes a span.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithTraceContext sets the base context intent spans start from, so
// cross-cutting span attributes such as the session id reach every span.
func WithTraceContext(ctx context.Context) Option {
	return func(e *Engine) { e.traceCtx = ctx }
}

// Engine is the phase state machine. It is the sole writer of State: every
// player intent is a method that validates against the current phase and
// either mutates state and cursor atomically or does nothing. Invalid
// intents are silent no-ops by design; the engine never errors on player
// input.
//
// The engine is single-threaded: callers dispatch one intent at a time.
type Engine struct {
	lib      *story.Library
	state    State
	cur      cursor
	rec      Recorder
	tracer   trace.Tracer
	traceCtx context.Context
}

// New creates an engine over a script library, starting at the home screen.
func New(lib *story.Library, opts ...Option) *Engine {
	e := &Engine{
		lib:   lib,
		state: newState(),
		cur:   cursor{lib: lib},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns a deep copy of the current state. Collaborators render
// from snapshots and never touch engine-owned memory.
func (e *Engine) Snapshot() State {
	return e.state.clone()
}

// ActiveNode returns the currently active script node, or nil when no
// dialogue is on screen.
func (e *Engine) ActiveNode() *story.Node {
	return e.cur.node()
}

// Library exposes the read-only script catalog, for collaborators that need
// to render result sequences or ending pages themselves.
func (e *Engine) Library() *story.Library {
	return e.lib
}

// Start begins a session from the home screen.
func (e *Engine) Start() {
	defer e.span("start")()
	if e.state.Phase != PhaseHome {
		return
	}
	e.state.Phase = PhaseIntro
}

// Restart resets the session to the home screen. Callers owning timers must
// cancel them before dispatching further intents.
func (e *Engine) Restart() {
	defer e.span("restart")()
	e.state = newState()
	e.cur.clear()
}

// StartDay enters a new morning. Day 1 is entered from the intro; later days
// only through FinishDayTransition. Promotion of the deferred outcome to
// pending happens here, atomically with the day increment.
func (e *Engine) StartDay(day int) {
	defer e.span("start_day")()
	if day < 1 || day > finalDay || day != e.state.Day+1 {
		return
	}
	if day == 1 {
		if e.state.Phase != PhaseIntro {
			return
		}
	} else if !e.state.Transitioning {
		return
	}
	e.startDay(day)
}

func (e *Engine) startDay(day int) {
	s := &e.state

	s.SceneItems = append(s.SceneItems, sceneItemsFor(day, s.History)...)

	s.Day = day
	s.Phase = PhaseMorning
	s.CurrentGuest = GuestNone
	s.CauldronContents = nil
	s.ActiveHint = ""
	s.Transitioning = false
	s.NarrativeBlackout = false

	if day <= 3 {
		s.UnlockedJournal = appendUnique(s.UnlockedJournal, day-1)
	}

	// The prior evening's outcome becomes this morning's report.
	s.PendingResult = s.DeferredResult
	s.DeferredResult = ""

	e.cur.start(fmt.Sprintf("day%d_start", day))
	e.applyNodeEffects()
}

// sceneItemsFor returns the keepsakes a new morning adds to the room.
func sceneItemsFor(day int, h History) []string {
	switch day {
	case 2:
		switch h.Day1Result {
		case VerdictCured:
			return []string{ItemFeather}
		case VerdictFail, VerdictUnset:
			return []string{ItemDagger}
		}
	case 3:
		switch h.Day2Result {
		case VerdictHeal:
			return []string{ItemBroom}
		case VerdictPoison:
			return []string{ItemMirror}
		}
	case 4:
		// The book appears; the cat has been here all along, but only now
		// can it go anywhere near the cauldron.
		return []string{ItemBook, ItemCat}
	}
	return nil
}

// Advance moves past the active node. Valid only when the node has no
// choices; the node just left is appended to the permanent log.
func (e *Engine) Advance() {
	defer e.span("advance")()
	node := e.cur.node()
	if node == nil || node.IsBranch() {
		return
	}
	e.logNode(node)
	e.stepSequence()
}

// Choose resolves a choice target on the active branch node. Unknown goto
// ids degrade to Advance behavior rather than failing.
func (e *Engine) Choose(target story.Target) {
	defer e.span("choose")()
	node := e.cur.node()
	if node == nil || !node.IsBranch() {
		return
	}
	e.logNode(node)

	switch target.Kind {
	case story.TargetEnterBrewing:
		e.enterBrewing(hintForPath(target.Path))
	case story.TargetCompleteEnding:
		e.completeEnding()
	case story.TargetGoto:
		if e.cur.jump(target.NodeID) {
			e.applyNodeEffects()
			return
		}
		e.stepSequence()
	}
}

// ChooseOption is the string-keyed form used by external collaborators: the
// target is matched against the active node's choices by goto id, falling
// back to a raw cross-library jump.
func (e *Engine) ChooseOption(targetID string) {
	node := e.cur.node()
	if node == nil || !node.IsBranch() {
		return
	}
	for _, choice := range node.Choices {
		if choice.Target.Kind == story.TargetGoto && choice.Target.NodeID == targetID {
			e.Choose(choice.Target)
			return
		}
	}
	e.Choose(story.Goto(targetID))
}

// AddIngredient drops an ingredient into the cauldron. Keepsakes are only
// accepted during day-4 brewing; a full cauldron silently rejects more.
func (e *Engine) AddIngredient(id string) {
	defer e.span("add_ingredient")()
	s := &e.state
	if s.Phase != PhaseBrewing {
		return
	}
	if IsKeepsake(id) && s.Day != finalDay {
		return
	}
	if len(s.CauldronContents) >= 3 {
		return
	}
	s.CauldronContents = append(s.CauldronContents, id)
}

// ClearCauldron empties the cauldron.
func (e *Engine) ClearCauldron() {
	defer e.span("clear_cauldron")()
	if e.state.Phase != PhaseBrewing {
		return
	}
	e.state.CauldronContents = nil
}

// Brew consumes the cauldron. Days 1-3 classify the mixture, stash the
// outcome for tomorrow's morning report, and play the immediate reaction
// sequence; day 4 selects the ending directly.
func (e *Engine) Brew() {
	defer e.span("brew")()
	s := &e.state
	if s.Phase != PhaseBrewing || len(s.CauldronContents) == 0 {
		return
	}

	ingredients := s.CauldronContents
	s.CauldronContents = nil
	s.UnlockedRecipes = append(s.UnlockedRecipes, strings.Join(ingredients, "+"))
	s.ActiveHint = ""

	if s.Day == finalDay {
		e.finishWithEnding(ingredients)
		return
	}

	outcome := resolveBrew(s.Day, ingredients)
	e.setVerdict(s.Day, outcome)

	s.CurrentGuest = GuestNone
	s.Phase = PhaseResult
	s.PendingResult = ""
	s.DeferredResult = outcome.Key

	if e.rec != nil {
		e.rec.RecordBrew(s.Day, ingredients, string(outcome.Verdict))
	}

	e.cur.start(immediateReactionKey(s.Day))
	e.applyNodeEffects()
}

// setVerdict writes a day's history slot at most once.
func (e *Engine) setVerdict(day int, outcome Outcome) {
	h := &e.state.History
	switch day {
	case 1:
		if h.Day1Result == VerdictUnset {
			h.Day1Result = outcome.Verdict
		}
	case 2:
		if h.Day2Result == VerdictUnset {
			h.Day2Result = outcome.Verdict
		}
	case 3:
		if h.Day3Result == VerdictUnset {
			h.Day3Result = outcome.Verdict
			if outcome.Rescue {
				h.RescuePerformed = true
			}
		}
	}
}

func (e *Engine) finishWithEnding(ingredients []string) {
	s := &e.state
	endingID := selectEnding(ingredients, s.History)

	s.Phase = PhaseEnding
	s.ActiveHint = ""
	s.PendingResult = ""
	s.DeferredResult = ""
	s.EndingScript = story.EndingScripts[endingID]
	s.ReachedEndingID = endingID
	s.ShowEndingUI = false

	if e.rec != nil {
		e.rec.RecordBrew(s.Day, ingredients, string(endingID))
	}

	e.cur.clear()
}

// AcknowledgeResult dismisses the morning-report modal.
func (e *Engine) AcknowledgeResult() {
	defer e.span("acknowledge_result")()
	e.state.PendingResult = ""
}

// FinishDayTransition is invoked by the presentation layer when the
// day-change settle timer fires. The deferred outcome is promoted and the
// day incremented in one step; no other intent can interleave because the
// engine is single-threaded and Transitioning gates re-entry.
func (e *Engine) FinishDayTransition() {
	defer e.span("finish_day_transition")()
	if !e.state.Transitioning || e.state.Day >= finalDay {
		return
	}
	e.startDay(e.state.Day + 1)
}

// TriggerTrueEnding starts the forbidden-knowledge dialogue. Only the
// godhead ending has one; every other ending goes straight to the
// acknowledgement screen.
func (e *Engine) TriggerTrueEnding() {
	defer e.span("trigger_true_ending")()
	s := &e.state
	if s.Phase != PhaseEnding || s.ReachedEndingID != story.EndingGodhead {
		return
	}
	s.Phase = PhaseTrueEnding
	e.cur.start(story.SeqTrueEnding)
}

// CompleteEnding shows the ending-acknowledgement screen.
func (e *Engine) CompleteEnding() {
	defer e.span("complete_ending")()
	if e.state.Phase != PhaseEnding && e.state.Phase != PhaseTrueEnding {
		return
	}
	e.completeEnding()
}

func (e *Engine) completeEnding() {
	e.state.Phase = PhaseEpilogue
	e.state.ShowEndingUI = true
	e.cur.clear()
}

// stepSequence moves the cursor one node forward and, at sequence end, runs
// the owning sequence's end-of-sequence transition.
func (e *Engine) stepSequence() {
	endedSeq, ended := e.cur.step()
	if !ended {
		e.applyNodeEffects()
		return
	}
	e.onSequenceEnd(endedSeq)
}

// onSequenceEnd is the sequence-end transition table. Sequences not listed
// here end without any phase change.
func (e *Engine) onSequenceEnd(seq string) {
	s := &e.state

	switch seq {
	case story.SeqDay2HealPrompt:
		e.enterBrewing(story.HintDay2Heal)
		return
	case story.SeqDay2PoisonPrompt:
		e.enterBrewing(story.HintDay2Poison)
		return
	case story.SeqDay3FakePrompt:
		e.enterBrewing(story.HintDay3Fake)
		return
	case story.SeqDay3PoisonPrompt:
		e.enterBrewing(story.HintDay3Poison)
		return
	case story.SeqDay4BrewPrompt:
		e.enterBrewing(e.day4Hint())
		return
	}

	switch s.Phase {
	case PhaseMorning:
		s.Phase = PhaseDialogue
		s.CurrentGuest = guestFor(s.Day)
		e.cur.start(fmt.Sprintf("day%d_guest", s.Day))
		e.applyNodeEffects()
	case PhaseResult:
		e.beginDayTransition()
	}
}

func guestFor(day int) Guest {
	switch day {
	case 1:
		return GuestBoy
	case 2:
		return GuestWoman
	case 3:
		return GuestGirl
	}
	return GuestNone
}

func (e *Engine) enterBrewing(hint string) {
	e.state.Phase = PhaseBrewing
	e.state.ActiveHint = hint
	e.cur.clear()
}

func hintForPath(path story.BrewPath) string {
	switch path {
	case story.BrewPathLove:
		return story.HintDay1Love
	case story.BrewPathPunish:
		return story.HintDay1Punish
	}
	return ""
}

// day4Hint rewards sessions that carried the right keepsakes through the
// week.
func (e *Engine) day4Hint() string {
	s := &e.state
	broom := s.HasSceneItem(ItemBroom)
	if (broom && s.HasSceneItem(ItemDagger)) || (broom && s.HasSceneItem(ItemFeather)) {
		return story.HintDay4Reward
	}
	return story.HintDay4Wake
}

// beginDayTransition raises the black day-change overlay. The presentation
// layer owns the settle timer and calls FinishDayTransition when it fires.
func (e *Engine) beginDayTransition() {
	s := &e.state
	if s.Day >= finalDay {
		return
	}
	s.CurrentGuest = GuestNone
	s.Transitioning = true
}

// applyNodeEffects runs node-entry side effects for the newly active node.
func (e *Engine) applyNodeEffects() {
	node := e.cur.node()
	if node == nil {
		return
	}
	switch node.ID {
	case blackoutOnNodeID:
		e.state.NarrativeBlackout = true
	case blackoutOffNodeID:
		e.state.NarrativeBlackout = false
	}
}

func (e *Engine) logNode(node *story.Node) {
	e.state.Logs = append(e.state.Logs, LogEntry{Speaker: node.Speaker, Text: node.Text})
	if e.rec != nil {
		e.rec.RecordLine(node.Speaker, node.Text)
	}
}

// span opens an intent span when tracing is attached; returns the closer.
func (e *Engine) span(intent string) func() {
	if e.tracer == nil {
		return func() {}
	}
	ctx := e.traceCtx
	if ctx == nil {
		ctx = context.Background()
	}
	_, sp := e.tracer.Start(ctx, "intent."+intent,
		trace.WithAttributes(
			attribute.Int("game.day", e.state.Day),
			attribute.String("game.phase", string(e.state.Phase)),
		),
	)
	return func() { sp.End() }
}

func appendUnique(list []int, v int) []int {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
