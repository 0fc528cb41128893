package game

import "potionhouse/internal/story"

// Phase is the single mode the session is in; it decides which intents are
// accepted and what the presentation layer renders.
type Phase string

const (
	PhaseHome       Phase = "HOME"
	PhaseIntro      Phase = "INTRO"
	PhaseMorning    Phase = "MORNING"
	PhaseDialogue   Phase = "DIALOGUE"
	PhaseBrewing    Phase = "BREWING"
	PhaseResult     Phase = "RESULT"
	PhaseEnding     Phase = "ENDING"
	PhaseTrueEnding Phase = "TRUE_ENDING"
	PhaseEpilogue   Phase = "EPILOGUE"
)

// Guest identifies the visitor present during a day's dialogue.
type Guest string

const (
	GuestNone  Guest = ""
	GuestBoy   Guest = "boy"
	GuestWoman Guest = "woman"
	GuestGirl  Guest = "girl"
)

// Verdict is a day's classified brew outcome as recorded in history.
type Verdict string

const (
	VerdictUnset Verdict = ""

	// Day 1.
	VerdictCured    Verdict = "cured"
	VerdictPoisoned Verdict = "poisoned"
	VerdictFail     Verdict = "fail"

	// Day 2.
	VerdictHeal     Verdict = "heal"
	VerdictPoison   Verdict = "poison"
	VerdictHealFail Verdict = "heal_fail"

	// Day 3.
	VerdictFreedom  Verdict = "freedom"
	VerdictDeath    Verdict = "death"
	VerdictMarriage Verdict = "marriage"
)

// History is the append-only per-day outcome record. Each day's verdict is
// written exactly once, during that day's brew resolution, and never revised.
type History struct {
	Day1Result Verdict
	Day2Result Verdict
	Day3Result Verdict

	// RescuePerformed is set alongside day 3's "freedom" verdict and read
	// across days.
	RescuePerformed bool
}

// LogEntry is one fully-read dialogue line in the permanent log.
type LogEntry struct {
	Speaker string
	Text    string
}

// State is the canonical game state, owned exclusively by the Engine.
// Collaborators only ever see copies (see Engine.Snapshot).
type State struct {
	Day   int
	Phase Phase

	CurrentGuest Guest

	// CauldronContents holds at most three ingredient ids, cleared on brew
	// or explicit clear.
	CauldronContents []string

	History History

	// SceneItems are the keepsakes currently placed in the room.
	SceneItems []string

	// UnlockedJournal holds unlocked journal entry indices, one new index
	// (day-1) per morning, days 1 through 3.
	UnlockedJournal []int

	// UnlockedRecipes records every brewed mixture as a display string.
	UnlockedRecipes []string

	// ActiveHint is the current brewing hint, set on entering the brewing
	// phase and cleared on leaving it.
	ActiveHint string

	// PendingResult is the outcome key shown to the player right now;
	// DeferredResult is held back until the next morning. A brew always
	// writes DeferredResult, and StartDay promotes it exactly once.
	PendingResult  string
	DeferredResult string

	// Presentation flags. Transitioning covers the black day-change screen;
	// NarrativeBlackout is driven by specific script nodes.
	Transitioning     bool
	NarrativeBlackout bool

	EndingScript    []story.EndingPage
	ReachedEndingID story.EndingID
	ShowEndingUI    bool

	Logs []LogEntry
}

func newState() State {
	return State{
		Day:   0,
		Phase: PhaseHome,
	}
}

// clone returns a deep copy so callers can never alias engine-owned slices.
func (s State) clone() State {
	out := s
	out.CauldronContents = append([]string(nil), s.CauldronContents...)
	out.SceneItems = append([]string(nil), s.SceneItems...)
	out.UnlockedJournal = append([]int(nil), s.UnlockedJournal...)
	out.UnlockedRecipes = append([]string(nil), s.UnlockedRecipes...)
	out.Logs = append([]LogEntry(nil), s.Logs...)
	out.EndingScript = append([]story.EndingPage(nil), s.EndingScript...)
	return out
}

// HasSceneItem reports whether a keepsake is placed in the room.
func (s *State) HasSceneItem(id string) bool {
	for _, item := range s.SceneItems {
		if item == id {
			return true
		}
	}
	return false
}
