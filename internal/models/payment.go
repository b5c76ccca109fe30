package models

import (
	"fmt"

	"quinzena/internal/constants"
	"quinzena/internal/money"
)

// PaymentDay is a recurring income event on a fixed day of the month.
type PaymentDay struct {
	ID          string      `json:"id"`
	Day         int         `json:"day"` // day of month, 1-31
	Amount      money.Money `json:"amount"`
	Description string      `json:"description,omitempty"`
}

func (p *PaymentDay) Validate() error {
	if p.Day < constants.MinPaymentDay || p.Day > constants.MaxPaymentDay {
		return fmt.Errorf("payment day must be between %d and %d, got %d",
			constants.MinPaymentDay, constants.MaxPaymentDay, p.Day)
	}
	if p.Amount < 0 {
		return fmt.Errorf("payment amount cannot be negative")
	}
	return nil
}

// DisplayName returns the description, or a generated label when it is empty.
func (p *PaymentDay) DisplayName() string {
	if p.Description != "" {
		return p.Description
	}
	return fmt.Sprintf("Pagamento do dia %d", p.Day)
}
