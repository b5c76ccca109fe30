package cli

import (
	"fmt"
	"time"

	"quinzena/internal/finance"
)

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	tracker, err := ctx.Tracker()
	if err != nil {
		return err
	}

	data := tracker.Data()

	if data.IsFirstAccess() {
		fmt.Println("Bem-vindo ao quinzena!")
		fmt.Println("Nenhum dado cadastrado ainda. Comece com:")
		fmt.Println("  quinzena payment add <day> --amount <value>")
		fmt.Println("  quinzena goal add <name> --target <value>")
		return nil
	}

	greeting := "Olá!"
	if data.UserName != "" {
		greeting = fmt.Sprintf("Olá, %s!", data.UserName)
	}
	fmt.Printf("%s 👋 Aqui está seu resumo financeiro do mês\n\n", greeting)

	income := finance.TotalMonthlyIncome(data)
	savings := finance.MonthlySavings(data)
	available := finance.AvailableAfterSavings(data)

	fmt.Printf("Renda Mensal:  %s (%d pagamentos por mês)\n", FormatMoney(data, income), len(data.PaymentDays))
	if len(data.PaymentDays) > 1 {
		fmt.Printf("Por Quinzena:  %s (média por período)\n", FormatMoney(data, income/2))
	}
	fmt.Printf("Guardando:     %s (%d%% do total)\n", FormatMoney(data, savings), data.SavingsPercentage)

	trend := "↑"
	if finance.AvailableTrend(data) == finance.TrendDown {
		trend = "↓"
	}
	fmt.Printf("Disponível:    %s %s (após despesas e reservas)\n", FormatMoney(data, available), trend)

	now := time.Now()
	if cd := finance.NextPayday(data.PaymentDays, now); cd.OK {
		fmt.Println()
		if cd.IsToday {
			fmt.Println("Hoje é dia de pagamento! 🎉")
		} else if cd.DaysUntil == 1 {
			fmt.Printf("1 dia pro dia %d\n", cd.Payment.Day)
		} else {
			fmt.Printf("%d dias pro dia %d\n", cd.DaysUntil, cd.Payment.Day)
		}
	}

	if len(data.PaymentDays) > 0 {
		fmt.Println("\nGuardar por Quinzena:")
		for _, p := range data.PaymentDays {
			perPayment := finance.SavingsPerPayment(p.Amount, data.SavingsPercentage)
			fmt.Printf("  dia %2d  %-24s recebe %-14s guardar %s\n",
				p.Day, p.DisplayName(),
				FormatMoney(data, p.Amount),
				FormatMoney(data, perPayment))
		}
	}

	if len(data.SavingsGoals) > 0 {
		fmt.Println("\nSuas Metas:")
		for _, g := range data.SavingsGoals {
			progress := finance.GoalProgress(g, savings)
			status := "configure sua caixinha"
			switch {
			case progress.Percent >= 100:
				status = "meta alcançada! 🎉"
			case progress.HasETA && progress.MonthsToGoal == 1:
				status = "1 mês restante"
			case progress.HasETA:
				status = fmt.Sprintf("%d meses restantes", progress.MonthsToGoal)
			}
			fmt.Printf("  %-20s %s de %s (%d%%) — %s\n",
				g.Name,
				FormatMoney(data, g.CurrentAmount),
				FormatMoney(data, g.TargetAmount),
				progress.Percent, status)
		}
	}

	return nil
}
