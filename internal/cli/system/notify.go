package system

import (
	"fmt"
	"time"

	"quinzena/internal/cli"
	"quinzena/internal/finance"
	"quinzena/internal/notifier"
)

type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

// Run delivers a pending payday alert to the desktop tray helper. Intended
// to be invoked from a scheduler (cron, systemd timer); dismissal still
// happens in the app so the alert keeps surfacing there until seen.
func (c *NotifyCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	payment, pending, err := ctx.Gate().Pending(data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to check payday notifications: %w", err)
	}
	if !pending {
		if c.DryRun {
			fmt.Println("No pending payday notification.")
		}
		return nil
	}

	suggestion := finance.SavingsPerPayment(payment.Amount, data.SavingsPercentage)
	text := fmt.Sprintf("Dia de pagamento! Você recebeu %s no dia %d. Sugestão para guardar: %s",
		payment.Amount.Format(), payment.Day, suggestion.Format())

	if c.DryRun {
		fmt.Println(text)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(text); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
