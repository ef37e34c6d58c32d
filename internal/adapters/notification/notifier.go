// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/lofibeats/lofi-cli/internal/config"
	"github.com/lofibeats/lofi-cli/internal/domain"
)

// Notifier handles desktop notifications for phase changes.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyPhaseChange announces the phase the session just entered.
func (n *Notifier) NotifyPhaseChange(next domain.Phase, cycle, cycles int) error {
	switch next.Kind {
	case domain.PhaseWork:
		return n.Notify("✅ Break over!", fmt.Sprintf("Back to work, cycle %d of %d.", cycle, cycles))
	case domain.PhaseShortBreak:
		return n.Notify("🛀 Break time!", fmt.Sprintf("Take %s off.", next.Duration))
	case domain.PhaseLongBreak:
		return n.Notify("🎉 Cycles done!", fmt.Sprintf("Enjoy a longer break: %s.", next.Duration))
	default:
		return nil
	}
}

// NotifySessionComplete announces the end of the session.
func (n *Notifier) NotifySessionComplete() error {
	return n.Notify("🏁 All done!", "Great job. See you next session.")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
