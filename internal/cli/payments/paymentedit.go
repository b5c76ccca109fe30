package payments

import (
	"fmt"

	"quinzena/internal/cli"
	"quinzena/internal/constants"
	"quinzena/internal/finance"
	"quinzena/internal/money"
)

type PaymentEditCmd struct {
	ID          string  `arg:"" help:"ID of the payment day to edit."`
	Day         *int    `help:"New day of the month (1-31)."`
	Amount      *string `help:"New payment amount."`
	Description *string `help:"New label."`
}

func (c *PaymentEditCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	if _, ok := data.PaymentByID(c.ID); !ok {
		fmt.Printf("No payment day found with id %s\n", c.ID)
		return nil
	}

	var update finance.PaymentUpdate
	if c.Day != nil {
		if *c.Day < constants.MinPaymentDay || *c.Day > constants.MaxPaymentDay {
			return fmt.Errorf("day must be between %d and %d", constants.MinPaymentDay, constants.MaxPaymentDay)
		}
		update.Day = c.Day
	}
	if c.Amount != nil {
		amount, err := money.ParsePositive(*c.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", *c.Amount)
		}
		update.Amount = &amount
	}
	if c.Description != nil {
		update.Description = c.Description
	}

	if update.Day == nil && update.Amount == nil && update.Description == nil {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := tracker.UpdatePaymentDay(c.ID, update); err != nil {
		return fmt.Errorf("failed to update payment day: %w", err)
	}

	fmt.Println("✓ Payment updated.")
	return nil
}
