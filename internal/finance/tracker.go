package finance

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"quinzena/internal/logger"
	"quinzena/internal/models"
	"quinzena/internal/money"
	"quinzena/internal/storage"
)

var (
	// ErrNonPositiveAmount is returned when a funding contribution is zero
	// or negative.
	ErrNonPositiveAmount = errors.New("funding amount must be positive")
)

// Tracker owns the in-memory financial record and applies every mutation as
// a load-transform-persist transaction. A mutex serializes writers so the
// record never sees interleaved updates.
type Tracker struct {
	mu    sync.Mutex
	store storage.Provider
	data  models.FinancialData
}

// NewTracker loads the current snapshot from the given provider.
func NewTracker(store storage.Provider) (*Tracker, error) {
	data, err := store.GetData()
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, data: data}, nil
}

// Data returns a copy of the current financial record.
func (t *Tracker) Data() models.FinancialData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// apply runs a pure transformation over the record and persists the result.
// The in-memory record is only replaced once persistence succeeds.
func (t *Tracker) apply(transform func(models.FinancialData) models.FinancialData) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := transform(t.data)
	if err := t.store.SaveData(next); err != nil {
		logger.Error("Failed to persist financial data", "error", err)
		return err
	}
	t.data = next
	return nil
}

// AddPaymentDay appends a new payment with a fresh id. Multiple entries for
// the same day are permitted; derivations sum them.
func (t *Tracker) AddPaymentDay(day int, amount money.Money, description string) (models.PaymentDay, error) {
	p := models.PaymentDay{
		ID:          uuid.New().String(),
		Day:         day,
		Amount:      amount,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return models.PaymentDay{}, err
	}

	err := t.apply(func(d models.FinancialData) models.FinancialData {
		d.PaymentDays = append(append([]models.PaymentDay{}, d.PaymentDays...), p)
		return d
	})
	if err != nil {
		return models.PaymentDay{}, err
	}
	return p, nil
}

// RemovePaymentDay filters out the matching payment. Removing an unknown id
// is a no-op, not an error.
func (t *Tracker) RemovePaymentDay(id string) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		kept := make([]models.PaymentDay, 0, len(d.PaymentDays))
		for _, p := range d.PaymentDays {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		d.PaymentDays = kept
		return d
	})
}

// PaymentUpdate carries the optional fields of an update; nil fields are
// left untouched.
type PaymentUpdate struct {
	Day         *int
	Amount      *money.Money
	Description *string
}

// UpdatePaymentDay merges the supplied fields into the matching payment.
// An unknown id is a no-op.
func (t *Tracker) UpdatePaymentDay(id string, update PaymentUpdate) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		next := make([]models.PaymentDay, len(d.PaymentDays))
		copy(next, d.PaymentDays)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			if update.Day != nil {
				next[i].Day = *update.Day
			}
			if update.Amount != nil {
				next[i].Amount = *update.Amount
			}
			if update.Description != nil {
				next[i].Description = *update.Description
			}
			break
		}
		d.PaymentDays = next
		return d
	})
}

// SetSavingsPercentage replaces the configured percentage. Range validation
// is the caller's responsibility.
func (t *Tracker) SetSavingsPercentage(pct int) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		d.SavingsPercentage = pct
		return d
	})
}

// SetMonthlyExpenses replaces the fixed monthly expenses.
func (t *Tracker) SetMonthlyExpenses(amount money.Money) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		d.MonthlyExpenses = amount
		return d
	})
}

// AddSavingsGoal appends a new empty goal with a fresh id. Unrecognized icon
// or color tags fall back to defaults.
func (t *Tracker) AddSavingsGoal(name string, target money.Money, icon models.GoalIcon, color models.GoalColor) (models.SavingsGoal, error) {
	g := models.SavingsGoal{
		ID:            uuid.New().String(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: 0,
		Icon:          icon,
		Color:         color,
	}
	g.Normalize()
	if err := g.Validate(); err != nil {
		return models.SavingsGoal{}, err
	}

	err := t.apply(func(d models.FinancialData) models.FinancialData {
		d.SavingsGoals = append(append([]models.SavingsGoal{}, d.SavingsGoals...), g)
		return d
	})
	if err != nil {
		return models.SavingsGoal{}, err
	}
	return g, nil
}

// RemoveSavingsGoal filters out the matching goal; unknown id is a no-op.
func (t *Tracker) RemoveSavingsGoal(id string) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		kept := make([]models.SavingsGoal, 0, len(d.SavingsGoals))
		for _, g := range d.SavingsGoals {
			if g.ID != id {
				kept = append(kept, g)
			}
		}
		d.SavingsGoals = kept
		return d
	})
}

// FundGoal adds a contribution to a goal, clamping at the target amount.
// Non-positive contributions are rejected. A goal that reaches its target
// stays in the list; it is never auto-removed.
func (t *Tracker) FundGoal(id string, amount money.Money) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return t.apply(func(d models.FinancialData) models.FinancialData {
		next := make([]models.SavingsGoal, len(d.SavingsGoals))
		copy(next, d.SavingsGoals)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			funded := next[i].CurrentAmount + amount
			if funded > next[i].TargetAmount {
				funded = next[i].TargetAmount
			}
			next[i].CurrentAmount = funded
			break
		}
		d.SavingsGoals = next
		return d
	})
}

// SetUserName replaces the display name.
func (t *Tracker) SetUserName(name string) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		d.UserName = name
		return d
	})
}

// SetNumbersVisible toggles whether monetary values are displayed or masked.
func (t *Tracker) SetNumbersVisible(visible bool) error {
	return t.apply(func(d models.FinancialData) models.FinancialData {
		d.NumbersVisible = visible
		return d
	})
}
