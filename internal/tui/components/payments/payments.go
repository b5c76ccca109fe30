package payments

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"quinzena/internal/finance"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	data   models.FinancialData
	cursor int
}

func New(data models.FinancialData) Model {
	return Model{data: data}
}

func (m *Model) SetData(data models.FinancialData) {
	m.data = data
	if m.cursor >= len(data.PaymentDays) {
		m.cursor = len(data.PaymentDays) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.data.PaymentDays)-1 {
		m.cursor++
	}
}

// Selected returns the payment under the cursor, if any.
func (m *Model) Selected() (models.PaymentDay, bool) {
	if len(m.data.PaymentDays) == 0 {
		return models.PaymentDay{}, false
	}
	return m.data.PaymentDays[m.cursor], true
}

func (m Model) money(v models.PaymentDay) (string, string) {
	savings := finance.SavingsPerPayment(v.Amount, m.data.SavingsPercentage)
	if !m.data.NumbersVisible {
		return money.Masked, money.Masked
	}
	return v.Amount.Format(), savings.Format()
}

func (m Model) View() string {
	title := titleStyle.Render("Próximos Recebimentos")

	if len(m.data.PaymentDays) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			"💸 Nenhum dia de pagamento cadastrado",
			mutedStyle.Render("Pressione 'a' para adicionar um pagamento."),
		)
	}

	lines := []string{title}
	for i, p := range m.data.PaymentDays {
		amount, savings := m.money(p)
		line := fmt.Sprintf("dia %2d  %-24s recebe %-14s guardar %s", p.Day, p.DisplayName(), amount, savings)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", mutedStyle.Render("a add • e edit • d delete • s simulate payday"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
