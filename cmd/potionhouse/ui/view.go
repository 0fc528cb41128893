package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"potionhouse/internal/game"
	"potionhouse/internal/story"
)

func (m Model) View() string {
	snap := m.snapshot()

	if m.journalOpen {
		return m.viewJournal(snap)
	}

	switch {
	case snap.Transitioning:
		return m.viewTransition()
	case snap.Phase == game.PhaseHome:
		return m.viewHome()
	case snap.Phase == game.PhaseIntro:
		return m.viewIntro()
	case snap.Phase == game.PhaseBrewing:
		return m.viewBrewing(snap)
	case snap.Phase == game.PhaseEnding:
		return m.viewEnding(snap)
	case snap.Phase == game.PhaseEpilogue:
		return m.viewEpilogue(snap)
	default:
		return m.viewScript(snap)
	}
}

func (m Model) viewHome() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	content := titleStyle.Render("The Potion House") + "\n\n" +
		hintStyle.Render("A four-day tale of herbs and visitors") + "\n\n\n" +
		hintStyle.Render("enter · begin    q · quit")

	return m.center(content)
}

func (m Model) viewIntro() string {
	if m.introIndex >= len(story.IntroLines) {
		return ""
	}
	introStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7")).
		Italic(true)
	return m.center(introStyle.Render(story.IntroLines[m.introIndex]))
}

func (m Model) viewTransition() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	return m.center(style.Render("..."))
}

func (m Model) viewScript(snap game.State) string {
	if m.reportOpen && snap.PendingResult != "" {
		return m.viewMorningReport(snap)
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
	speakerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)
	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	knockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)
	choiceStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)

	if snap.NarrativeBlackout {
		headerStyle = headerStyle.Foreground(lipgloss.Color("0"))
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Day %d", snap.Day)))
	s.WriteString("\n\n")

	node := m.activeNode()
	if node == nil {
		return m.frame(s.String())
	}

	style := textStyle
	if game.KnockNodeIDs[node.ID] {
		style = knockStyle
	}

	if node.Speaker != story.SpeakerSystem {
		s.WriteString(speakerStyle.Render(node.Speaker) + "\n")
	}

	runes := []rune(node.Text)
	shown := m.typed
	if shown > len(runes) {
		shown = len(runes)
	}
	visible := string(runes[:shown])
	s.WriteString(style.Render(wrapAndIndent(visible, m.contentWidth(), "")))
	s.WriteString("\n")

	if node.IsBranch() && !m.typing {
		s.WriteString("\n")
		for i, choice := range node.Choices {
			if i == m.selected {
				s.WriteString(selectedStyle.Render("> "+choice.Text) + "\n")
			} else {
				s.WriteString(choiceStyle.Render("  "+choice.Text) + "\n")
			}
		}
	}

	return m.frame(s.String())
}

func (m Model) viewMorningReport(snap game.State) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)
	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	var s strings.Builder
	if title, ok := story.ResultTitles[snap.PendingResult]; ok {
		s.WriteString(titleStyle.Render(title) + "\n\n")
	}
	if nodes, ok := m.engine.Library().Sequence(snap.PendingResult); ok {
		for _, node := range nodes {
			s.WriteString(bodyStyle.Render(wrapAndIndent(node.Text, m.contentWidth(), "")) + "\n\n")
		}
	}
	s.WriteString(hintStyle.Render("enter · continue"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return m.center(boxStyle.Render(s.String()))
}

func (m Model) viewBrewing(snap game.State) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Italic(true)
	itemStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)
	keepsakeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12"))
	cauldronStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Day %d · The Cauldron", snap.Day)))
	s.WriteString("\n\n")

	hint := snap.ActiveHint
	if hint == "" {
		hint = story.DayHints[snap.Day]
	}
	s.WriteString(hintStyle.Render(wrapAndIndent(hint, m.contentWidth(), "")) + "\n\n")

	contents := "empty"
	if len(snap.CauldronContents) > 0 {
		contents = strings.Join(snap.CauldronContents, ", ")
	}
	s.WriteString(cauldronStyle.Render("cauldron: "+contents) + "\n\n")

	for i, id := range m.shelf(snap) {
		style := itemStyle
		if game.IsKeepsake(id) {
			style = keepsakeStyle
		}
		if i == m.selected {
			s.WriteString(selectedStyle.Render("> "+id) + "\n")
		} else {
			s.WriteString(style.Render("  "+id) + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(headerStyle.Render("enter · add    c · empty    b · brew"))

	return m.frame(s.String())
}

func (m Model) viewEnding(snap game.State) string {
	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	if m.endingPage >= len(snap.EndingScript) {
		return ""
	}

	page := snap.EndingScript[m.endingPage]
	shown := m.endingLine
	if shown > len(page) {
		shown = len(page)
	}

	var s strings.Builder
	for _, line := range page[:shown] {
		s.WriteString(textStyle.Render(wrapAndIndent(line, m.contentWidth(), "")) + "\n\n")
	}

	return m.center(s.String())
}

func (m Model) viewEpilogue(snap game.State) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	title := story.EndingTitles[snap.ReachedEndingID]
	content := titleStyle.Render(title) + "\n\n\n" +
		hintStyle.Render("r · return to the beginning    q · quit")

	return m.center(content)
}

func (m Model) viewJournal(snap game.State) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)
	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	var s strings.Builder
	s.WriteString(titleStyle.Render("Lady Diana's Journal") + "\n\n")
	if len(snap.UnlockedJournal) == 0 {
		s.WriteString(bodyStyle.Render("The pages refuse to open.") + "\n")
	}
	for _, idx := range snap.UnlockedJournal {
		if idx >= 0 && idx < len(story.JournalEntries) {
			s.WriteString(bodyStyle.Render(wrapAndIndent(story.JournalEntries[idx], m.contentWidth(), "")) + "\n\n")
		}
	}
	if len(snap.UnlockedRecipes) > 0 {
		s.WriteString(titleStyle.Render("Mixtures tried") + "\n")
		for _, recipe := range snap.UnlockedRecipes {
			s.WriteString(bodyStyle.Render("  "+recipe) + "\n")
		}
		s.WriteString("\n")
	}
	s.WriteString(hintStyle.Render("j · close"))

	return m.frame(s.String())
}

// frame wraps content in the standard bordered panel.
func (m Model) frame(content string) string {
	panel := lipgloss.NewStyle().
		Width(m.panelWidth()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)
	return panel.Render(content)
}

// center places content in the middle of the screen.
func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) panelWidth() int {
	if m.width > 8 {
		return m.width - 4
	}
	return 76
}

func (m Model) contentWidth() int {
	return m.panelWidth() - 6
}

func wrapAndIndent(text string, width int, indent string) string {
	var result strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(paragraph, width, indent))
	}
	return result.String()
}

func wrapLine(text string, width int, indent string) string {
	if len(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}
