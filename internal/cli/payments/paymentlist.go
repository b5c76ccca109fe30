package payments

import (
	"fmt"
	"strings"
	"time"

	"quinzena/internal/cli"
	"quinzena/internal/finance"
)

type PaymentListCmd struct{}

func (c *PaymentListCmd) Run(ctx *cli.Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()
	if len(data.PaymentDays) == 0 {
		fmt.Println("No payment days configured.")
		return nil
	}

	fmt.Printf("%-36s %-4s %-14s %-14s %s\n", "ID", "Day", "Amount", "To save", "Description")
	fmt.Println(strings.Repeat("-", 90))

	for _, p := range data.PaymentDays {
		savings := finance.SavingsPerPayment(p.Amount, data.SavingsPercentage)
		fmt.Printf("%-36s %-4d %-14s %-14s %s\n",
			p.ID, p.Day,
			cli.FormatMoney(data, p.Amount),
			cli.FormatMoney(data, savings),
			p.DisplayName())
	}

	if cd := finance.NextPayday(data.PaymentDays, time.Now()); cd.OK {
		fmt.Println()
		if cd.IsToday {
			fmt.Println("Hoje é dia de pagamento! 🎉")
		} else if cd.DaysUntil == 1 {
			fmt.Printf("1 dia pro dia %d\n", cd.Payment.Day)
		} else {
			fmt.Printf("%d dias pro dia %d\n", cd.DaysUntil, cd.Payment.Day)
		}
	}

	return nil
}
