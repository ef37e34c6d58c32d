// Package tui provides the terminal user interface implementation using
// the Bubbletea framework. The program doubles as the input listener: key
// messages become session events, applied once per tick.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/domain"
	"github.com/lofibeats/lofi-cli/internal/ports"
)

// tickInterval is how often the session is advanced and redrawn.
const tickInterval = 250 * time.Millisecond

// tickMsg is sent on every timer tick.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model renders the running session.
type Model struct {
	driver   ports.SessionDriver
	snap     domain.Snapshot
	progress progress.Model
	theme    config.ThemeConfig
	width    int
	quitting bool
}

// NewModel creates the timer model over a session driver.
func NewModel(driver ports.SessionDriver, theme config.ThemeConfig) Model {
	return Model{
		driver:   driver,
		snap:     driver.State(),
		progress: progress.New(progress.WithDefaultGradient()),
		theme:    theme,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "s":
			m.driver.Handle(domain.EventSkip)
			m.snap = m.driver.State()
		case "p":
			m.driver.Handle(domain.EventPauseToggle)
			m.snap = m.driver.State()
		case "i":
			m.driver.Handle(domain.EventIgnore)
			m.snap = m.driver.State()
		}

	case tickMsg:
		m.snap = m.driver.Tick()
		if m.snap.Done {
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 12
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.progress.Width = w
		}
	}
	return m, nil
}

// phaseColor returns the color for the current phase, accounting for pause.
func (m Model) phaseColor() lipgloss.Color {
	if m.snap.Paused {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	if m.snap.Phase.IsBreak() {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap.Done {
		return "\n  🏁 All done! Great job.\n\n"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.phaseColor())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString("\n")

	title := fmt.Sprintf("  %s · Cycle %d/%d", m.snap.Phase.Label(), m.snap.Cycle, m.snap.Cycles)
	if m.snap.Paused {
		title += " · ⏸ paused"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString("  " + m.progress.ViewAs(m.snap.Progress()))
	b.WriteString(fmt.Sprintf("  %s\n", formatRemaining(m.snap.Remaining)))

	if m.snap.NowPlaying != "" {
		b.WriteString(fmt.Sprintf("\n  🎵 %s\n", m.snap.NowPlaying))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  s skip · p pause · i ignore track · q quit"))
	b.WriteString("\n")
	return b.String()
}

// formatRemaining formats a duration as MM:SS, rounding up so the display
// reaches 00:00 exactly when the phase expires.
func formatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
