package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"potionhouse/internal/game"
	"potionhouse/internal/story"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case typeTickMsg:
		return m.handleTypeTick(msg)
	case introAdvanceMsg:
		return m.handleIntroAdvance(msg)
	case settleDoneMsg:
		return m.handleSettleDone(msg)
	case endingStepMsg:
		return m.handleEndingStep(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleTypeTick(msg typeTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.timerGen || !m.typing {
		return m, nil
	}
	node := m.activeNode()
	if node == nil {
		m.typing = false
		return m, nil
	}
	m.typed++
	if m.typed >= len([]rune(node.Text)) {
		m.typing = false
		return m, nil
	}
	return m, typeTimer(m.timerGen)
}

func (m Model) handleIntroAdvance(msg introAdvanceMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.timerGen || m.snapshot().Phase != game.PhaseIntro {
		return m, nil
	}
	m.introIndex++
	if m.introIndex < len(story.IntroLines) {
		return m, introTimer(m.timerGen)
	}
	return m.beginFirstDay()
}

func (m Model) handleSettleDone(msg settleDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.timerGen || !m.snapshot().Transitioning {
		return m, nil
	}
	m.engine.FinishDayTransition()
	snap := m.snapshot()
	m.reportOpen = snap.PendingResult != ""
	m.logger.Printf("Day %d begins, pending result: %q", snap.Day, snap.PendingResult)
	return m, m.beginNode()
}

func (m Model) handleEndingStep(msg endingStepMsg) (tea.Model, tea.Cmd) {
	snap := m.snapshot()
	if msg.gen != m.timerGen || snap.Phase != game.PhaseEnding {
		return m, nil
	}
	if m.endingPage >= len(snap.EndingScript) {
		return m, nil
	}

	page := snap.EndingScript[m.endingPage]
	if m.endingLine < len(page) {
		m.endingLine++
		if m.endingLine < len(page) {
			return m, endingTimer(m.timerGen, endingLineInterval)
		}
		return m, endingTimer(m.timerGen, endingHoldInterval)
	}

	// Page held long enough; move on or leave the ending screen.
	if m.endingPage+1 < len(snap.EndingScript) {
		m.endingPage++
		m.endingLine = 0
		return m, endingTimer(m.timerGen, endingEnterBuffer+endingLineInterval)
	}

	if snap.ReachedEndingID == story.EndingGodhead {
		m.engine.TriggerTrueEnding()
		return m, m.beginNode()
	}
	m.engine.CompleteEnding()
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	snap := m.snapshot()

	if m.journalOpen {
		if key == "j" || key == "esc" || key == "enter" {
			m.journalOpen = false
		}
		return m, nil
	}

	switch snap.Phase {
	case game.PhaseHome:
		return m.handleHomeKey(key)
	case game.PhaseIntro:
		return m.handleIntroKey(key)
	case game.PhaseMorning, game.PhaseDialogue, game.PhaseResult, game.PhaseTrueEnding:
		return m.handleScriptKey(key, snap)
	case game.PhaseBrewing:
		return m.handleBrewingKey(key, snap)
	case game.PhaseEnding:
		return m, nil
	case game.PhaseEpilogue:
		return m.handleEpilogueKey(key)
	}
	return m, nil
}

func (m Model) handleHomeKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "enter":
		m.engine.Start()
		m.introIndex = 0
		m.timerGen++
		return m, introTimer(m.timerGen)
	}
	return m, nil
}

func (m Model) handleIntroKey(key string) (tea.Model, tea.Cmd) {
	if key == "enter" {
		return m.beginFirstDay()
	}
	return m, nil
}

func (m Model) handleScriptKey(key string, snap game.State) (tea.Model, tea.Cmd) {
	if m.reportOpen {
		if key == "enter" {
			m.engine.AcknowledgeResult()
			m.reportOpen = false
		}
		return m, nil
	}

	node := m.activeNode()

	// The journal key yields to choice menus, where j moves the selection.
	choicesShowing := node != nil && node.IsBranch() && !m.typing
	if key == "j" && !choicesShowing && snap.Phase != game.PhaseTrueEnding {
		m.journalOpen = true
		return m, nil
	}

	if node == nil {
		return m, nil
	}

	if m.typing {
		if key == "enter" {
			m.revealAll()
		}
		return m, nil
	}

	if node.IsBranch() {
		switch key {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(node.Choices)-1 {
				m.selected++
			}
		case "enter":
			m.engine.Choose(node.Choices[m.selected].Target)
			return m.afterEngineStep()
		}
		return m, nil
	}

	if key == "enter" {
		m.engine.Advance()
		return m.afterEngineStep()
	}
	return m, nil
}

func (m Model) handleBrewingKey(key string, snap game.State) (tea.Model, tea.Cmd) {
	shelf := m.shelf(snap)
	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(shelf)-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(shelf) {
			m.engine.AddIngredient(shelf[m.selected])
		}
	case "c":
		m.engine.ClearCauldron()
	case "b":
		m.engine.Brew()
		return m.afterBrew()
	}
	return m, nil
}

func (m Model) handleEpilogueKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "r", "enter":
		m.engine.Restart()
		m.timerGen++
		m.introIndex = 0
		m.typed = 0
		m.typing = false
		m.selected = 0
		m.endingPage = 0
		m.endingLine = 0
		m.reportOpen = false
		m.journalOpen = false
	}
	return m, nil
}

// beginFirstDay leaves the intro for day one.
func (m Model) beginFirstDay() (tea.Model, tea.Cmd) {
	m.engine.StartDay(1)
	m.reportOpen = false
	return m, m.beginNode()
}

// beginNode restarts the typewriter over whatever node is now active. It
// bumps the timer generation so any earlier tick dies quietly.
func (m *Model) beginNode() tea.Cmd {
	m.timerGen++
	m.startTyping()
	if !m.typing {
		return nil
	}
	return typeTimer(m.timerGen)
}

// afterEngineStep inspects where an advance or choice landed and restarts
// the matching presentation flow.
func (m Model) afterEngineStep() (tea.Model, tea.Cmd) {
	snap := m.snapshot()

	if snap.Transitioning {
		m.timerGen++
		m.typing = false
		return m, settleTimer(m.timerGen)
	}

	switch snap.Phase {
	case game.PhaseBrewing:
		m.selected = 0
		m.typing = false
		return m, nil
	case game.PhaseEpilogue:
		m.typing = false
		return m, nil
	}

	return m, m.beginNode()
}

// afterBrew handles the two places a brew can land: the same-day reaction
// script, or the ending screen on the last day.
func (m Model) afterBrew() (tea.Model, tea.Cmd) {
	snap := m.snapshot()
	m.logger.Printf("Brew on day %d landed in phase %s", snap.Day, snap.Phase)
	switch snap.Phase {
	case game.PhaseResult:
		return m, m.beginNode()
	case game.PhaseEnding:
		m.timerGen++
		m.endingPage = 0
		m.endingLine = 0
		m.typing = false
		return m, endingTimer(m.timerGen, endingLineInterval)
	}
	return m, nil
}

// shelf lists what can go into the cauldron right now: the herbs, plus any
// keepsakes in the room on the final day.
func (m Model) shelf(snap game.State) []string {
	shelf := append([]string(nil), game.Herbs...)
	if snap.Day == 4 {
		for _, item := range snap.SceneItems {
			shelf = append(shelf, item)
		}
	}
	return shelf
}
