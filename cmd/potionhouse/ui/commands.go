package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// typeInterval is the per-rune typewriter delay.
	typeInterval = 35 * time.Millisecond
	// introInterval is how long each intro line lingers before fading.
	introInterval = 1200 * time.Millisecond
	// settleInterval is the black day-change screen hold.
	settleInterval = 2 * time.Second
	// endingLineInterval paces the ending narration, one line at a time.
	endingLineInterval = 2 * time.Second
	// endingHoldInterval keeps a finished page up before the next one.
	endingHoldInterval = 2 * time.Second
	// endingEnterBuffer delays the first line of every page after the first.
	endingEnterBuffer = 1 * time.Second
)

func typeTimer(gen int) tea.Cmd {
	return tea.Tick(typeInterval, func(time.Time) tea.Msg {
		return typeTickMsg{gen: gen}
	})
}

func introTimer(gen int) tea.Cmd {
	return tea.Tick(introInterval, func(time.Time) tea.Msg {
		return introAdvanceMsg{gen: gen}
	})
}

func settleTimer(gen int) tea.Cmd {
	return tea.Tick(settleInterval, func(time.Time) tea.Msg {
		return settleDoneMsg{gen: gen}
	})
}

func endingTimer(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return endingStepMsg{gen: gen}
	})
}
