package story

// Speaker names used across the scripts. Kept as plain strings so sequences
// can introduce one-off speakers without touching a registry.
const (
	SpeakerSystem  = "System"
	SpeakerWhisper = "Whisper"
	SpeakerCat     = "Black Cat"
	SpeakerWitch   = "Witch"
)

// TargetKind distinguishes what a choice target does when selected.
type TargetKind int

const (
	// TargetGoto jumps to a node by id, anywhere in the library.
	TargetGoto TargetKind = iota
	// TargetEnterBrewing skips script resolution entirely and moves the
	// session into the brewing phase with a path-specific hint.
	TargetEnterBrewing
	// TargetCompleteEnding finishes the true-ending dialogue and hands
	// control to the ending-acknowledgement screen.
	TargetCompleteEnding
)

// BrewPath selects which hint accompanies a brewing phase entered directly
// from a choice.
type BrewPath int

const (
	BrewPathNone BrewPath = iota
	BrewPathLove
	BrewPathPunish
)

// Target is a tagged choice destination. NodeID is only meaningful for
// TargetGoto, Path only for TargetEnterBrewing.
type Target struct {
	Kind   TargetKind
	NodeID string
	Path   BrewPath
}

// Goto builds a node-jump target.
func Goto(nodeID string) Target { return Target{Kind: TargetGoto, NodeID: nodeID} }

// EnterBrewing builds a direct-to-brewing target.
func EnterBrewing(path BrewPath) Target { return Target{Kind: TargetEnterBrewing, Path: path} }

// CompleteEnding builds the terminal true-ending target.
func CompleteEnding() Target { return Target{Kind: TargetCompleteEnding} }

// Choice is one selectable option on a branch node.
type Choice struct {
	Text   string
	Target Target
}

// Node is a single unit of dialogue. A node with choices is a branch point
// and has no implicit successor; otherwise sequence order decides what comes
// next.
type Node struct {
	ID      string
	Speaker string
	Text    string
	Choices []Choice
}

// IsBranch reports whether the node requires a choice to proceed.
func (n *Node) IsBranch() bool { return len(n.Choices) > 0 }
