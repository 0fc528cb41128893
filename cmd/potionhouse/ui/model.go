package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"potionhouse/internal/debug"
	"potionhouse/internal/game"
	"potionhouse/internal/story"
)

// Model is the terminal presentation over the game engine. It owns every
// timer and all reveal/selection state; the engine owns the game itself.
type Model struct {
	engine *game.Engine
	logger *debug.Logger

	width  int
	height int

	// timerGen invalidates in-flight timer messages. Every scheduled tick
	// carries the generation it was started under; a restart or a phase
	// change bumps the counter and stale ticks fall through.
	timerGen int

	// Intro crawl.
	introIndex int

	// Typewriter reveal over the active script node.
	typed  int
	typing bool

	// Selection index, shared by choice menus and the brewing table.
	selected int

	// Ending narration progress.
	endingPage int
	endingLine int

	// Morning report modal; true until the player dismisses the outcome.
	reportOpen bool

	journalOpen bool
}

func NewModel(engine *game.Engine, logger *debug.Logger) Model {
	return Model{
		engine: engine,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// snapshot is shorthand for the engine's current state copy.
func (m Model) snapshot() game.State {
	return m.engine.Snapshot()
}

// activeNode returns the script node under the cursor, nil when no script is
// playing.
func (m Model) activeNode() *story.Node {
	return m.engine.ActiveNode()
}

// startTyping resets the typewriter for a freshly active node.
func (m *Model) startTyping() {
	m.typed = 0
	m.typing = m.activeNode() != nil
	m.selected = 0
}

// revealAll short-circuits the typewriter so the whole line is visible.
func (m *Model) revealAll() {
	if node := m.activeNode(); node != nil {
		m.typed = len([]rune(node.Text))
	}
	m.typing = false
}

type typeTickMsg struct{ gen int }

type introAdvanceMsg struct{ gen int }

type settleDoneMsg struct{ gen int }

type endingStepMsg struct{ gen int }
