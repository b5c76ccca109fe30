package models

import (
	"quinzena/internal/constants"
	"quinzena/internal/money"
)

// FinancialData is the single persisted aggregate. Every derived figure is a
// pure function of this record plus the current date.
type FinancialData struct {
	PaymentDays       []PaymentDay  `json:"paymentDays"`
	SavingsPercentage int           `json:"savingsPercentage"`
	SavingsGoals      []SavingsGoal `json:"savingsGoals"`
	MonthlyExpenses   money.Money   `json:"monthlyExpenses"`
	UserName          string        `json:"userName"`
	NumbersVisible    bool          `json:"numbersVisible"`
}

// DefaultFinancialData returns the documented defaults used when no data has
// been persisted or the persisted blob cannot be parsed.
func DefaultFinancialData() FinancialData {
	return FinancialData{
		PaymentDays:       []PaymentDay{},
		SavingsPercentage: constants.DefaultSavingsPercentage,
		SavingsGoals:      []SavingsGoal{},
		MonthlyExpenses:   0,
		UserName:          "",
		NumbersVisible:    true,
	}
}

// IsFirstAccess reports whether the user has recorded anything meaningful
// yet. A display name alone does not count.
func (d *FinancialData) IsFirstAccess() bool {
	return len(d.PaymentDays) == 0 && len(d.SavingsGoals) == 0 && d.MonthlyExpenses == 0
}

// PaymentByID returns the payment with the given id and whether it exists.
func (d *FinancialData) PaymentByID(id string) (PaymentDay, bool) {
	for _, p := range d.PaymentDays {
		if p.ID == id {
			return p, true
		}
	}
	return PaymentDay{}, false
}

// GoalByID returns the goal with the given id and whether it exists.
func (d *FinancialData) GoalByID(id string) (SavingsGoal, bool) {
	for _, g := range d.SavingsGoals {
		if g.ID == id {
			return g, true
		}
	}
	return SavingsGoal{}, false
}
