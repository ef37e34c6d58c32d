package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/domain"
)

// scriptedDriver records events and returns canned snapshots.
type scriptedDriver struct {
	snap   domain.Snapshot
	events []domain.Event
	ticks  int
}

func (d *scriptedDriver) Tick() domain.Snapshot {
	d.ticks++
	return d.snap
}

func (d *scriptedDriver) Handle(ev domain.Event) {
	d.events = append(d.events, ev)
}

func (d *scriptedDriver) State() domain.Snapshot {
	return d.snap
}

func workSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Phase:      domain.Phase{Kind: domain.PhaseWork, Duration: 25 * time.Minute},
		Cycle:      1,
		Cycles:     4,
		Remaining:  10 * time.Minute,
		NowPlaying: "a.mp3",
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_KeysBecomeEvents(t *testing.T) {
	driver := &scriptedDriver{snap: workSnapshot()}
	m := NewModel(driver, config.DefaultThemeConfig())

	var model tea.Model = m
	model, _ = model.Update(keyMsg("s"))
	model, _ = model.Update(keyMsg("p"))
	model, _ = model.Update(keyMsg("i"))
	_ = model

	want := []domain.Event{domain.EventSkip, domain.EventPauseToggle, domain.EventIgnore}
	if len(driver.events) != len(want) {
		t.Fatalf("events = %v, want %v", driver.events, want)
	}
	for i := range want {
		if driver.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", driver.events, want)
		}
	}
}

func TestModel_TickAdvancesDriver(t *testing.T) {
	driver := &scriptedDriver{snap: workSnapshot()}
	m := NewModel(driver, config.DefaultThemeConfig())

	_, cmd := m.Update(tickMsg(time.Now()))
	if driver.ticks != 1 {
		t.Errorf("ticks = %d, want 1", driver.ticks)
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestModel_QuitsWhenSessionDone(t *testing.T) {
	driver := &scriptedDriver{snap: domain.Snapshot{Done: true}}
	m := NewModel(driver, config.DefaultThemeConfig())

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.Quit", msg)
	}
}

func TestModel_QuitKey(t *testing.T) {
	driver := &scriptedDriver{snap: workSnapshot()}
	m := NewModel(driver, config.DefaultThemeConfig())

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.Quit", msg)
	}
}

func TestModel_ViewShowsPhaseAndTrack(t *testing.T) {
	driver := &scriptedDriver{snap: workSnapshot()}
	m := NewModel(driver, config.DefaultThemeConfig())

	view := m.View()
	for _, want := range []string{"Work", "Cycle 1/4", "a.mp3", "10:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{1500 * time.Millisecond, "00:02"}, // rounds up
		{0, "00:00"},
	}
	for _, tt := range tests {
		if got := formatRemaining(tt.d); got != tt.want {
			t.Errorf("formatRemaining(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}
