package cmd

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

const logFileName = "color-switch.log"

// setupLogging sends the standard logger to path when debug is set and
// discards it otherwise. The terminal belongs to the TUI, so nothing is
// logged to stderr.
func setupLogging(debug bool, path string) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "color-switch")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
