package cli

import (
	"testing"

	"quinzena/internal/models"
	"quinzena/internal/money"
)

func TestFormatMoney(t *testing.T) {
	amount := money.FromCents(123456)

	d := models.DefaultFinancialData()
	if got := FormatMoney(d, amount); got != "R$ 1.234,56" {
		t.Errorf("FormatMoney() visible = %q, want R$ 1.234,56", got)
	}

	d.NumbersVisible = false
	if got := FormatMoney(d, amount); got != money.Masked {
		t.Errorf("FormatMoney() hidden = %q, want %q", got, money.Masked)
	}
}
