package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taxcast/internal/tui"
)

func main() {
	// Get filing file path from arguments
	filingPath := ""
	if len(os.Args) > 1 {
		filingPath = os.Args[1]
	} else {
		fmt.Println("Usage: taxcast-tui <filing-file>")
		os.Exit(1)
	}

	// Check if filing file exists
	if _, err := os.Stat(filingPath); os.IsNotExist(err) {
		fmt.Printf("Error: Filing file not found: %s\n", filingPath)
		os.Exit(1)
	}

	// Create the application model
	model := tui.NewModel(filingPath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
