package summary

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"quinzena/internal/finance"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	data models.FinancialData
	now  time.Time
}

func New(data models.FinancialData) Model {
	return Model{data: data, now: time.Now()}
}

func (m *Model) SetData(data models.FinancialData) {
	m.data = data
	m.now = time.Now()
}

func (m Model) money(v money.Money) string {
	if !m.data.NumbersVisible {
		return money.Masked
	}
	return v.Format()
}

func (m Model) View() string {
	if m.data.IsFirstAccess() {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			accentStyle.Render("Bem-vindo ao quinzena!"),
			"",
			"Metas claras, vida leve.",
			"Organize suas metas financeiras de acordo com seu salário.",
			"",
			mutedStyle.Render("Adicione um pagamento na aba Pagamentos para começar."),
		)
	}

	greeting := "Olá! 👋"
	if m.data.UserName != "" {
		greeting = fmt.Sprintf("Olá, %s! 👋", m.data.UserName)
	}

	income := finance.TotalMonthlyIncome(m.data)
	savings := finance.MonthlySavings(m.data)
	available := finance.AvailableAfterSavings(m.data)

	cards := []string{
		card("Renda Mensal", m.money(income),
			fmt.Sprintf("%d pagamentos por mês", len(m.data.PaymentDays))),
		card("Guardando", m.money(savings),
			fmt.Sprintf("%d%% do total", m.data.SavingsPercentage)),
	}
	if len(m.data.PaymentDays) > 1 {
		cards = append(cards, card("Por Quinzena", m.money(income/2), "média por período"))
	}
	trend := "↑"
	if finance.AvailableTrend(m.data) == finance.TrendDown {
		trend = "↓"
	}
	cards = append(cards, card("Disponível", m.money(available), "após despesas e reservas "+trend))

	sections := []string{
		accentStyle.Render(greeting),
		mutedStyle.Render("Aqui está seu resumo financeiro do mês"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	}

	if cd := finance.NextPayday(m.data.PaymentDays, m.now); cd.OK {
		sections = append(sections, "")
		if cd.IsToday {
			sections = append(sections, accentStyle.Render("Hoje é dia de pagamento! 🎉"))
		} else if cd.DaysUntil == 1 {
			sections = append(sections, fmt.Sprintf("📅 1 dia pro dia %d", cd.Payment.Day))
		} else {
			sections = append(sections, fmt.Sprintf("📅 %d dias pro dia %d", cd.DaysUntil, cd.Payment.Day))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func card(title, value, subtitle string) string {
	return cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
		cardTitleStyle.Render(subtitle),
	))
}
