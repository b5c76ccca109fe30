// Package notify implements the payday notification gate: a once-per-month
// suppression mechanism keyed by (year, month, payment day).
package notify

import (
	"fmt"
	"time"

	"quinzena/internal/logger"
	"quinzena/internal/models"
	"quinzena/internal/storage"
)

// SeenKey builds the marker key for a payday occurrence. The month segment
// is zero-based, matching the persisted key format of earlier installations.
func SeenKey(t time.Time, day int) string {
	return fmt.Sprintf("payday-seen-%d-%d-%d", t.Year(), int(t.Month())-1, day)
}

// Gate evaluates which payday alert, if any, should be surfaced.
type Gate struct {
	store storage.Provider
}

func NewGate(store storage.Provider) *Gate {
	return &Gate{store: store}
}

// Pending scans payment days in stored order and returns the first entry
// whose payday has been reached this month and not yet been dismissed.
func (g *Gate) Pending(data models.FinancialData, today time.Time) (models.PaymentDay, bool, error) {
	currentDay := today.Day()

	for _, p := range data.PaymentDays {
		if p.Day > currentDay {
			continue
		}
		seen, err := g.store.IsSeen(SeenKey(today, p.Day))
		if err != nil {
			return models.PaymentDay{}, false, err
		}
		if !seen {
			return p, true, nil
		}
	}
	return models.PaymentDay{}, false, nil
}

// Simulate returns the alert for the first configured payment regardless of
// seen state. Dismissing a simulated alert still writes the marker.
func (g *Gate) Simulate(data models.FinancialData) (models.PaymentDay, bool) {
	if len(data.PaymentDays) == 0 {
		return models.PaymentDay{}, false
	}
	return data.PaymentDays[0], true
}

// Dismiss marks the payday as seen for the current calendar month, then
// prunes markers older than the previous month so the namespace stays
// bounded over long-lived installations.
func (g *Gate) Dismiss(day int, today time.Time) error {
	if err := g.store.MarkSeen(SeenKey(today, day)); err != nil {
		return err
	}
	g.prune(today)
	return nil
}

func (g *Gate) prune(today time.Time) {
	keys, err := g.store.SeenKeys()
	if err != nil {
		logger.Warn("Failed to list seen markers for pruning", "error", err)
		return
	}

	// Keep the current and previous calendar months only.
	current := today.Year()*12 + int(today.Month()) - 1
	for _, key := range keys {
		var year, month, day int
		if _, err := fmt.Sscanf(key, "payday-seen-%d-%d-%d", &year, &month, &day); err != nil {
			continue
		}
		if year*12+month < current-1 {
			if err := g.store.DeleteSeen(key); err != nil {
				logger.Warn("Failed to prune seen marker", "key", key, "error", err)
			}
		}
	}
}
