package settings

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"quinzena/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)
)

type Model struct {
	data models.FinancialData
}

func New(data models.FinancialData) Model {
	return Model{data: data}
}

func (m *Model) SetData(data models.FinancialData) {
	m.data = data
}

func (m Model) View() string {
	name := m.data.UserName
	if name == "" {
		name = "(not set)"
	}

	visible := "yes"
	if !m.data.NumbersVisible {
		visible = "no"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Configurações"),
		fmt.Sprintf("%s %s", labelStyle.Render("Name:"), valueStyle.Render(name)),
		fmt.Sprintf("%s %s", labelStyle.Render("Savings Percentage:"), valueStyle.Render(fmt.Sprintf("%d%%", m.data.SavingsPercentage))),
		fmt.Sprintf("%s %s", labelStyle.Render("Monthly Expenses:"), valueStyle.Render(m.data.MonthlyExpenses.Format())),
		fmt.Sprintf("%s %s", labelStyle.Render("Numbers Visible:"), valueStyle.Render(visible)),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).Render("Press 'e' to edit settings"),
	)

	return content
}
