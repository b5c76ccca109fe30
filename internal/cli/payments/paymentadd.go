package payments

import (
	"fmt"

	"quinzena/internal/cli"
	"quinzena/internal/constants"
	"quinzena/internal/money"
)

type PaymentAddCmd struct {
	Day         int    `arg:"" help:"Day of the month the payment arrives (1-31)."`
	Amount      string `help:"Payment amount, e.g. 2500 or 2500,50." required:""`
	Description string `help:"Optional label for this payment."`
}

func (c *PaymentAddCmd) Validate() error {
	if c.Day < constants.MinPaymentDay || c.Day > constants.MaxPaymentDay {
		return fmt.Errorf("day must be between %d and %d", constants.MinPaymentDay, constants.MaxPaymentDay)
	}
	if _, err := money.ParsePositive(c.Amount); err != nil {
		return fmt.Errorf("invalid amount %q", c.Amount)
	}
	return nil
}

func (c *PaymentAddCmd) Run(ctx *cli.Context) error {
	amount, err := money.ParsePositive(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", c.Amount)
	}

	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	p, err := tracker.AddPaymentDay(c.Day, amount, c.Description)
	if err != nil {
		return fmt.Errorf("failed to add payment day: %w", err)
	}

	fmt.Printf("✓ Payment added: %s on day %d (%s)\n", p.DisplayName(), p.Day, p.Amount.Format())
	return nil
}
