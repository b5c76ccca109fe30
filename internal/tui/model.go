package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"quinzena/internal/finance"
	"quinzena/internal/models"
	"quinzena/internal/notify"
	"quinzena/internal/tui/components/goals"
	"quinzena/internal/tui/components/payments"
	"quinzena/internal/tui/components/settings"
	"quinzena/internal/tui/components/summary"
)

// SessionState identifies the active view.
type SessionState int

const (
	StateSummary SessionState = iota
	StatePayments
	StateGoals
	StateSettings
	StateAddPayment
	StateEditPayment
	StateAddGoal
	StateFundGoal
	StateEditSettings
	StateConfirmDeletePayment
	StateConfirmDeleteGoal
	StateAlert
)

type PaymentFormModel struct {
	Day         string
	Amount      string
	Description string
}

type GoalFormModel struct {
	Name   string
	Target string
	Icon   models.GoalIcon
	Color  models.GoalColor
}

type FundFormModel struct {
	Amount string
}

type SettingsFormModel struct {
	Name        string
	Percentage  string
	Expenses    string
	ShowNumbers bool
}

type Model struct {
	tracker *finance.Tracker
	gate    *notify.Gate

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	summaryModel  summary.Model
	paymentsModel payments.Model
	goalsModel    goals.Model
	settingsModel settings.Model

	form         *huh.Form
	paymentForm  *PaymentFormModel
	goalForm     *GoalFormModel
	fundForm     *FundFormModel
	settingsForm *SettingsFormModel

	editingPaymentID string
	fundingGoalID    string
	deleteTargetID   string

	// alertPayment is set while the payday overlay is visible.
	alertPayment *models.PaymentDay

	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(tracker *finance.Tracker, gate *notify.Gate) Model {
	data := tracker.Data()

	m := Model{
		tracker:       tracker,
		gate:          gate,
		state:         StateSummary,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		summaryModel:  summary.New(data),
		paymentsModel: payments.New(data),
		goalsModel:    goals.New(data),
		settingsModel: settings.New(data),
	}

	// Surface a pending payday alert on startup, matching the page-load
	// check of the web flow.
	if payment, pending, err := gate.Pending(data, time.Now()); err == nil && pending {
		m.alertPayment = &payment
		m.previousState = StateSummary
		m.state = StateAlert
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh pushes the current record into every component.
func (m *Model) refresh() {
	data := m.tracker.Data()
	m.summaryModel.SetData(data)
	m.paymentsModel.SetData(data)
	m.goalsModel.SetData(data)
	m.settingsModel.SetData(data)
}
