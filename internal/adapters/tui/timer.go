package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/ports"
)

// Run starts the timer interface and blocks until the session finishes,
// the user quits, or ctx is cancelled.
func Run(ctx context.Context, driver ports.SessionDriver, theme config.ThemeConfig) error {
	program := tea.NewProgram(NewModel(driver, theme))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// RunHeadless drives the session without a terminal attached: the timer
// and music run, keyboard control is unavailable. Phase notices come from
// the transition hook.
func RunHeadless(ctx context.Context, driver ports.SessionDriver) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if snap := driver.Tick(); snap.Done {
				return nil
			}
		}
	}
}
