package cli

import (
	"fmt"
	"time"

	"quinzena/internal/finance"
	"quinzena/internal/models"
)

type PaydayCmd struct {
	Simulate bool `help:"Show the alert for the first configured payment regardless of seen state."`
	Dismiss  bool `help:"Mark the surfaced payday as seen for this month."`
}

func (c *PaydayCmd) Run(ctx *Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	gate := ctx.Gate()
	now := time.Now()

	var payment models.PaymentDay
	var pending bool
	if c.Simulate {
		payment, pending = gate.Simulate(data)
	} else {
		payment, pending, err = gate.Pending(data, now)
		if err != nil {
			return fmt.Errorf("failed to check payday notifications: %w", err)
		}
	}

	if !pending {
		fmt.Println("No pending payday notification.")
		return nil
	}

	suggestion := finance.SavingsPerPayment(payment.Amount, data.SavingsPercentage)
	fmt.Println("💸 Dia de pagamento!")
	fmt.Printf("Você recebeu %s no dia %d.\n", payment.Amount.Format(), payment.Day)
	fmt.Printf("Sugestão para guardar: %s\n", suggestion.Format())

	if c.Dismiss {
		// A simulated alert is dismissed the same way a real one is.
		if err := gate.Dismiss(payment.Day, now); err != nil {
			return fmt.Errorf("failed to dismiss payday notification: %w", err)
		}
		fmt.Println("✓ Marked as seen for this month.")
	}

	return nil
}
