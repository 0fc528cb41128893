package game

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"potionhouse/internal/observability"
	"potionhouse/internal/story"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	lib, err := story.NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary err: %v", err)
	}
	return New(lib, opts...)
}

// playToBranch advances through plain dialogue until the cursor rests on a
// branch node or runs out of script.
func playToBranch(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 200; i++ {
		node := e.ActiveNode()
		if node == nil || node.IsBranch() {
			return
		}
		e.Advance()
	}
	t.Fatal("script never reached a branch or an end")
}

// chooseAt selects the branch option at the given index.
func chooseAt(t *testing.T, e *Engine, index int) {
	t.Helper()
	node := e.ActiveNode()
	if node == nil || !node.IsBranch() {
		t.Fatalf("no branch active, node = %v", node)
	}
	if index >= len(node.Choices) {
		t.Fatalf("choice index %d out of range on node %s", index, node.ID)
	}
	e.Choose(node.Choices[index].Target)
}

// brew runs a day's brewing phase with the given cauldron contents.
func brew(t *testing.T, e *Engine, ingredients ...string) {
	t.Helper()
	if e.Snapshot().Phase != PhaseBrewing {
		t.Fatalf("phase = %s, want %s before brewing", e.Snapshot().Phase, PhaseBrewing)
	}
	for _, id := range ingredients {
		e.AddIngredient(id)
	}
	e.Brew()
}

// finishResultDay plays the reaction script and crosses into the next morning.
func finishResultDay(t *testing.T, e *Engine) {
	t.Helper()
	playToBranch(t, e)
	if !e.Snapshot().Transitioning {
		t.Fatalf("expected day transition after reaction script, state: %+v", e.Snapshot().Phase)
	}
	e.FinishDayTransition()
}

func TestEngine_FullPlaythroughToTrueEnding(t *testing.T) {
	e := newTestEngine(t)

	if got := e.Snapshot().Phase; got != PhaseHome {
		t.Fatalf("initial phase = %s, want %s", got, PhaseHome)
	}

	e.Start()
	if got := e.Snapshot().Phase; got != PhaseIntro {
		t.Fatalf("phase after Start = %s, want %s", got, PhaseIntro)
	}

	// Day 1: brew the love potion.
	e.StartDay(1)
	snap := e.Snapshot()
	if snap.Day != 1 || snap.Phase != PhaseMorning {
		t.Fatalf("day 1 state = day %d phase %s", snap.Day, snap.Phase)
	}
	if len(snap.UnlockedJournal) != 1 || snap.UnlockedJournal[0] != 0 {
		t.Fatalf("journal after day 1 = %v, want [0]", snap.UnlockedJournal)
	}

	playToBranch(t, e)
	snap = e.Snapshot()
	if snap.Phase != PhaseDialogue || snap.CurrentGuest != GuestBoy {
		t.Fatalf("after morning: phase %s guest %s, want dialogue with the boy", snap.Phase, snap.CurrentGuest)
	}

	playToBranch(t, e)
	chooseAt(t, e, 0) // the love path
	snap = e.Snapshot()
	if snap.Phase != PhaseBrewing || snap.ActiveHint != story.HintDay1Love {
		t.Fatalf("after choice: phase %s hint %q", snap.Phase, snap.ActiveHint)
	}

	brew(t, e, HerbEryngium, HerbChamomile)
	snap = e.Snapshot()
	if snap.Phase != PhaseResult {
		t.Fatalf("phase after brew = %s, want %s", snap.Phase, PhaseResult)
	}
	if snap.History.Day1Result != VerdictCured {
		t.Fatalf("day 1 verdict = %s, want %s", snap.History.Day1Result, VerdictCured)
	}
	if snap.PendingResult != "" || snap.DeferredResult != story.SeqDay1ResultLove {
		t.Fatalf("outcome keys = pending %q deferred %q, want deferred only", snap.PendingResult, snap.DeferredResult)
	}

	finishResultDay(t, e)

	// Day 2: the deferred outcome surfaces exactly once, then the salve.
	snap = e.Snapshot()
	if snap.Day != 2 {
		t.Fatalf("day = %d, want 2", snap.Day)
	}
	if snap.PendingResult != story.SeqDay1ResultLove || snap.DeferredResult != "" {
		t.Fatalf("promotion failed: pending %q deferred %q", snap.PendingResult, snap.DeferredResult)
	}
	if !snap.HasSceneItem(ItemFeather) {
		t.Fatalf("scene items = %v, want the feather after a cure", snap.SceneItems)
	}

	e.AcknowledgeResult()
	if got := e.Snapshot().PendingResult; got != "" {
		t.Fatalf("pending after acknowledge = %q, want empty", got)
	}

	playToBranch(t, e) // morning
	playToBranch(t, e) // guest dialogue up to the first branch
	chooseAt(t, e, 0)  // ask if she is alright
	playToBranch(t, e)
	chooseAt(t, e, 0)  // mix the salve
	playToBranch(t, e) // the one-line heal prompt
	snap = e.Snapshot()
	if snap.Phase != PhaseBrewing || snap.ActiveHint != story.HintDay2Heal {
		t.Fatalf("day 2 brewing: phase %s hint %q", snap.Phase, snap.ActiveHint)
	}

	brew(t, e, HerbAloe, HerbEryngium)
	if got := e.Snapshot().History.Day2Result; got != VerdictHeal {
		t.Fatalf("day 2 verdict = %s, want %s", got, VerdictHeal)
	}
	finishResultDay(t, e)

	// Day 3: the feigned-death draught.
	snap = e.Snapshot()
	if snap.Day != 3 || !snap.HasSceneItem(ItemBroom) {
		t.Fatalf("day 3 state: day %d items %v, want the broom after the heal", snap.Day, snap.SceneItems)
	}
	e.AcknowledgeResult()

	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0) // what happened?
	playToBranch(t, e)
	chooseAt(t, e, 0) // attempt the draught
	playToBranch(t, e)
	snap = e.Snapshot()
	if snap.Phase != PhaseBrewing || snap.ActiveHint != story.HintDay3Fake {
		t.Fatalf("day 3 brewing: phase %s hint %q", snap.Phase, snap.ActiveHint)
	}

	brew(t, e, HerbAconite, HerbHemlock)
	snap = e.Snapshot()
	if snap.History.Day3Result != VerdictFreedom || !snap.History.RescuePerformed {
		t.Fatalf("day 3 history = %+v, want freedom with rescue", snap.History)
	}
	finishResultDay(t, e)

	// Day 4: the arrest, the blackout, the golden draught.
	snap = e.Snapshot()
	if snap.Day != 4 || !snap.HasSceneItem(ItemBook) {
		t.Fatalf("day 4 state: day %d items %v", snap.Day, snap.SceneItems)
	}
	e.AcknowledgeResult()

	sawBlackoutOn := false
	for i := 0; i < 50; i++ {
		node := e.ActiveNode()
		if node == nil || node.IsBranch() {
			break
		}
		e.Advance()
		snap = e.Snapshot()
		if next := e.ActiveNode(); next != nil {
			switch next.ID {
			case "d4_4":
				if !snap.NarrativeBlackout {
					t.Fatal("blackout not raised on the arrest node")
				}
				sawBlackoutOn = true
			case "d4_8":
				if snap.NarrativeBlackout {
					t.Fatal("blackout not lowered when the house returns")
				}
			}
		}
	}
	if !sawBlackoutOn {
		t.Fatal("never reached the arrest node")
	}

	chooseAt(t, e, 0) // wake up
	playToBranch(t, e)
	snap = e.Snapshot()
	if snap.Phase != PhaseBrewing || snap.ActiveHint != story.HintDay4Reward {
		t.Fatalf("day 4 brewing: phase %s hint %q, want the reward hint", snap.Phase, snap.ActiveHint)
	}

	brew(t, e, ItemFeather, ItemBroom)
	snap = e.Snapshot()
	if snap.Phase != PhaseEnding || snap.ReachedEndingID != story.EndingGodhead {
		t.Fatalf("after final brew: phase %s ending %s", snap.Phase, snap.ReachedEndingID)
	}
	if len(snap.EndingScript) == 0 {
		t.Fatal("ending script not loaded")
	}
	if snap.ShowEndingUI {
		t.Fatal("ending acknowledgement shown before the narration finished")
	}

	e.TriggerTrueEnding()
	snap = e.Snapshot()
	if snap.Phase != PhaseTrueEnding {
		t.Fatalf("phase = %s, want %s", snap.Phase, PhaseTrueEnding)
	}

	for i := 0; i < 20; i++ {
		playToBranch(t, e)
		node := e.ActiveNode()
		if node == nil {
			break
		}
		chooseAt(t, e, 0)
		if e.Snapshot().Phase == PhaseEpilogue {
			break
		}
	}

	snap = e.Snapshot()
	if snap.Phase != PhaseEpilogue || !snap.ShowEndingUI {
		t.Fatalf("final state: phase %s showEndingUI %v", snap.Phase, snap.ShowEndingUI)
	}
}

func TestEngine_StartDayGuards(t *testing.T) {
	e := newTestEngine(t)

	e.StartDay(1) // not in intro yet
	if got := e.Snapshot().Day; got != 0 {
		t.Fatalf("day = %d, want 0 before Start", got)
	}

	e.Start()
	e.StartDay(2) // days cannot be skipped
	if got := e.Snapshot().Day; got != 0 {
		t.Fatalf("day = %d, want 0 after skipping", got)
	}

	e.StartDay(1)
	if got := e.Snapshot().Day; got != 1 {
		t.Fatalf("day = %d, want 1", got)
	}

	e.StartDay(2) // no transition pending
	if got := e.Snapshot().Day; got != 1 {
		t.Fatalf("day = %d, want 1 without a transition", got)
	}
}

func TestEngine_AddIngredientRules(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)

	e.AddIngredient(HerbChamomile) // not brewing
	if got := e.Snapshot().CauldronContents; len(got) != 0 {
		t.Fatalf("cauldron = %v, want empty outside brewing", got)
	}

	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0)
	if got := e.Snapshot().Phase; got != PhaseBrewing {
		t.Fatalf("phase = %s, want %s", got, PhaseBrewing)
	}

	e.AddIngredient(ItemDagger) // keepsakes are day-4 only
	if got := e.Snapshot().CauldronContents; len(got) != 0 {
		t.Fatalf("cauldron = %v, keepsake accepted before the final day", got)
	}

	e.AddIngredient(HerbChamomile)
	e.AddIngredient(HerbChamomile)
	e.AddIngredient(HerbSage)
	e.AddIngredient(HerbAloe) // over the cap
	if got := e.Snapshot().CauldronContents; len(got) != 3 {
		t.Fatalf("cauldron = %v, want exactly 3", got)
	}

	e.ClearCauldron()
	if got := e.Snapshot().CauldronContents; len(got) != 0 {
		t.Fatalf("cauldron = %v after clear, want empty", got)
	}

	e.Brew() // empty cauldron
	if got := e.Snapshot().Phase; got != PhaseBrewing {
		t.Fatalf("phase = %s, empty brew should be a no-op", got)
	}
}

func TestEngine_VerdictWritesOnce(t *testing.T) {
	e := newTestEngine(t)

	e.setVerdict(1, Outcome{Verdict: VerdictCured})
	e.setVerdict(1, Outcome{Verdict: VerdictPoisoned})
	if got := e.Snapshot().History.Day1Result; got != VerdictCured {
		t.Fatalf("day 1 verdict = %s, first write must stand", got)
	}

	e.setVerdict(3, Outcome{Verdict: VerdictFreedom, Rescue: true})
	e.setVerdict(3, Outcome{Verdict: VerdictDeath})
	h := e.Snapshot().History
	if h.Day3Result != VerdictFreedom || !h.RescuePerformed {
		t.Fatalf("day 3 history = %+v, first write must stand", h)
	}
}

func TestEngine_SnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0)
	e.AddIngredient(HerbChamomile)

	snap := e.Snapshot()
	snap.CauldronContents[0] = HerbHemlock
	snap.Logs = append(snap.Logs, LogEntry{Speaker: "x", Text: "y"})

	if got := e.Snapshot().CauldronContents[0]; got != HerbChamomile {
		t.Fatalf("cauldron = %q, snapshot mutation leaked into engine state", got)
	}
}

func TestEngine_RestartResetsEverything(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0)
	brew(t, e, HerbAloe)

	e.Restart()
	snap := e.Snapshot()
	if snap.Phase != PhaseHome || snap.Day != 0 {
		t.Fatalf("after restart: phase %s day %d", snap.Phase, snap.Day)
	}
	if snap.History.Day1Result != VerdictUnset || len(snap.Logs) != 0 || len(snap.SceneItems) != 0 {
		t.Fatalf("restart left residue: %+v", snap)
	}
	if e.ActiveNode() != nil {
		t.Fatal("cursor still active after restart")
	}
}

type fakeRecorder struct {
	lines int
	brews []string
}

func (r *fakeRecorder) RecordLine(speaker, text string) { r.lines++ }
func (r *fakeRecorder) RecordBrew(day int, ingredients []string, outcome string) {
	r.brews = append(r.brews, outcome)
}

func TestEngine_RecorderSeesLinesAndBrews(t *testing.T) {
	rec := &fakeRecorder{}
	e := newTestEngine(t, WithRecorder(rec))

	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0)
	brew(t, e, HerbEryngium, HerbChamomile)

	if rec.lines == 0 {
		t.Fatal("no dialogue lines recorded")
	}
	if len(rec.brews) != 1 || rec.brews[0] != string(VerdictCured) {
		t.Fatalf("brews = %v, want one cured brew", rec.brews)
	}
}

func TestEngine_TrueEndingOnlyForGodhead(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1) // the punishment path
	brew(t, e, HerbAloe)
	finishResultDay(t, e)

	// Days 2 and 3 fail quietly; day 4 brews nothing special.
	e.AcknowledgeResult()
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1) // straight to the salve
	playToBranch(t, e)
	brew(t, e, HerbSage)
	finishResultDay(t, e)

	e.AcknowledgeResult()
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1) // mix the poison
	playToBranch(t, e)
	brew(t, e, HerbSage)
	finishResultDay(t, e)

	e.AcknowledgeResult()
	playToBranch(t, e)
	chooseAt(t, e, 0)
	playToBranch(t, e)
	brew(t, e, HerbHemlock)

	snap := e.Snapshot()
	if snap.Phase != PhaseEnding || snap.ReachedEndingID != story.EndingPyre {
		t.Fatalf("ending = %s in phase %s, want the pyre", snap.ReachedEndingID, snap.Phase)
	}

	e.TriggerTrueEnding()
	if got := e.Snapshot().Phase; got != PhaseEnding {
		t.Fatalf("phase = %s, true ending must be godhead-only", got)
	}

	e.CompleteEnding()
	snap = e.Snapshot()
	if snap.Phase != PhaseEpilogue || !snap.ShowEndingUI {
		t.Fatalf("after CompleteEnding: phase %s showEndingUI %v", snap.Phase, snap.ShowEndingUI)
	}
}

func TestEngine_ChooseOptionSelectsByGotoID(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1)
	brew(t, e, HerbAloe)
	finishResultDay(t, e)
	e.AcknowledgeResult()

	// Day 2's first branch jumps by node id.
	playToBranch(t, e)
	logsBefore := len(e.Snapshot().Logs)

	e.ChooseOption("d2_b1")
	node := e.ActiveNode()
	if node == nil || node.ID != "d2_b1" {
		t.Fatalf("active node = %v, want d2_b1", node)
	}
	if got := len(e.Snapshot().Logs); got != logsBefore+1 {
		t.Fatalf("log grew by %d entries, the branch node must be logged once", got-logsBefore)
	}
}

func TestEngine_ChooseOptionUnknownIDAdvances(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)

	e.ChooseOption("nowhere")
	snap := e.Snapshot()
	if snap.Phase != PhaseDialogue {
		t.Fatalf("phase = %s, an unresolvable target must not change phase", snap.Phase)
	}
	if e.ActiveNode() != nil {
		t.Fatal("cursor still on the branch, want it moved past like an advance")
	}
}

func TestEngine_SpansCarrySessionID(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(observability.SessionSpanProcessor()),
		sdktrace.WithSpanProcessor(recorder),
	)
	traceCtx := observability.WithSessionID(context.Background(), "session-under-test")

	e := newTestEngine(t,
		WithTracer(tp.Tracer("test")),
		WithTraceContext(traceCtx),
	)
	e.Start()

	spans := recorder.Ended()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "session.id" {
			if got := kv.Value.AsString(); got != "session-under-test" {
				t.Fatalf("session.id = %q, want session-under-test", got)
			}
			return
		}
	}
	t.Fatalf("span %q carries no session.id attribute", spans[0].Name())
}

func TestEngine_CatEndingBeatsKeepsakePairs(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.StartDay(1)
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 0)
	brew(t, e, HerbEryngium, HerbChamomile)
	finishResultDay(t, e)

	e.AcknowledgeResult()
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1)
	playToBranch(t, e)
	brew(t, e, HerbAloe, HerbEryngium)
	finishResultDay(t, e)

	e.AcknowledgeResult()
	playToBranch(t, e)
	playToBranch(t, e)
	chooseAt(t, e, 1)
	playToBranch(t, e)
	brew(t, e, HerbAconite, HerbHemlock, HerbHemlock)
	finishResultDay(t, e)

	e.AcknowledgeResult()
	playToBranch(t, e)
	chooseAt(t, e, 0)
	playToBranch(t, e)

	// Feather and broom are both in the room, but the cat overrides them.
	brew(t, e, ItemCat, ItemFeather, ItemBroom)
	if got := e.Snapshot().ReachedEndingID; got != story.EndingCat {
		t.Fatalf("ending = %s, want the cat", got)
	}
}
