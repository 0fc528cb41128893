// Potion House is a terminal narrative game: four days in a witch's
// herb shop, one visitor a day, and a cauldron that answers for all of it.
// Built with the Bubble Tea TUI framework.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"potionhouse/internal/logging"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "review", "--review":
			runReviewMode()
			return
		}
	}

	model, cleanup, err := createApp()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
	}
}

// runReviewMode prints recent brews from past sessions, outside the TUI.
func runReviewMode() {
	logger, err := logging.NewSessionLogger()
	if err != nil {
		fmt.Printf("Failed to open session database: %v\n", err)
		return
	}
	defer logger.Close()

	brews, err := logger.RecentBrews(20)
	if err != nil {
		fmt.Printf("Failed to get brews: %v\n", err)
		return
	}

	if len(brews) == 0 {
		fmt.Println("No brews found. Play the game first to generate data!")
		return
	}

	fmt.Printf("Recent brews (%d):\n\n", len(brews))

	for _, brew := range brews {
		fmt.Printf("[%d] %s | day %d | session %s\n",
			brew.ID,
			brew.Timestamp.Format("2006-01-02 15:04:05"),
			brew.Day,
			brew.SessionID[:8])
		fmt.Printf("  %s -> %s\n", brew.Ingredients, brew.Outcome)
		fmt.Println(strings.Repeat("-", 50))
	}
}
