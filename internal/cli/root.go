package cli

import (
	"quinzena/internal/finance"
	"quinzena/internal/models"
	"quinzena/internal/money"
	"quinzena/internal/notify"
	"quinzena/internal/storage"
)

type Context struct {
	Store storage.Provider

	tracker *finance.Tracker
	gate    *notify.Gate
}

// Tracker returns the mutation tracker, creating it from the store on first
// use.
func (c *Context) Tracker() (*finance.Tracker, error) {
	if c.tracker == nil {
		t, err := finance.NewTracker(c.Store)
		if err != nil {
			return nil, err
		}
		c.tracker = t
	}
	return c.tracker, nil
}

// Gate returns the payday notification gate.
func (c *Context) Gate() *notify.Gate {
	if c.gate == nil {
		c.gate = notify.NewGate(c.Store)
	}
	return c.gate
}

// FormatMoney renders an amount, masking it when the user has hidden
// numbers.
func FormatMoney(d models.FinancialData, m money.Money) string {
	if !d.NumbersVisible {
		return money.Masked
	}
	return m.Format()
}
