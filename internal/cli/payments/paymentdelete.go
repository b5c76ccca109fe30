package payments

import (
	"fmt"

	"quinzena/internal/cli"
)

type PaymentDeleteCmd struct {
	ID string `arg:"" help:"ID of the payment day to remove."`
}

func (c *PaymentDeleteCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if err := tracker.RemovePaymentDay(c.ID); err != nil {
		return fmt.Errorf("failed to remove payment day: %w", err)
	}

	fmt.Println("✓ Payment removed.")
	return nil
}
