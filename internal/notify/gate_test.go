package notify

import (
	"path/filepath"
	"testing"
	"time"

	"quinzena/internal/models"
	"quinzena/internal/money"
	"quinzena/internal/storage"
)

func setupGate(t *testing.T) *Gate {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "quinzena.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	return NewGate(store)
}

func payments(days ...int) models.FinancialData {
	d := models.DefaultFinancialData()
	for i, dayNum := range days {
		d.PaymentDays = append(d.PaymentDays, models.PaymentDay{
			ID:     string(rune('a' + i)),
			Day:    dayNum,
			Amount: money.FromCents(100000),
		})
	}
	return d
}

func TestSeenKey(t *testing.T) {
	// The month segment is zero-based.
	got := SeenKey(time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), 5)
	if got != "payday-seen-2026-8-5" {
		t.Errorf("SeenKey() = %q, want payday-seen-2026-8-5", got)
	}
}

func TestGate_Pending(t *testing.T) {
	today := time.Date(2026, time.September, 20, 12, 0, 0, 0, time.UTC)

	t.Run("no payments", func(t *testing.T) {
		g := setupGate(t)
		_, pending, err := g.Pending(models.DefaultFinancialData(), today)
		if err != nil {
			t.Fatal(err)
		}
		if pending {
			t.Error("Pending() = true with no payments")
		}
	})

	t.Run("payday not reached", func(t *testing.T) {
		g := setupGate(t)
		_, pending, err := g.Pending(payments(25), today)
		if err != nil {
			t.Fatal(err)
		}
		if pending {
			t.Error("Pending() = true before the payday")
		}
	})

	t.Run("first reached payment in stored order", func(t *testing.T) {
		g := setupGate(t)
		// Stored order 20, 5: both are reached; the first stored entry wins.
		p, pending, err := g.Pending(payments(20, 5), today)
		if err != nil {
			t.Fatal(err)
		}
		if !pending {
			t.Fatal("Pending() = false, want true")
		}
		if p.Day != 20 {
			t.Errorf("Pending() day = %d, want 20 (stored order)", p.Day)
		}
	})

	t.Run("dismissed payday is suppressed", func(t *testing.T) {
		g := setupGate(t)
		data := payments(20, 5)

		if err := g.Dismiss(20, today); err != nil {
			t.Fatal(err)
		}

		// The next reached-and-unseen entry surfaces.
		p, pending, err := g.Pending(data, today)
		if err != nil {
			t.Fatal(err)
		}
		if !pending || p.Day != 5 {
			t.Errorf("Pending() after dismiss = (%d, %v), want (5, true)", p.Day, pending)
		}

		if err := g.Dismiss(5, today); err != nil {
			t.Fatal(err)
		}
		_, pending, err = g.Pending(data, today)
		if err != nil {
			t.Fatal(err)
		}
		if pending {
			t.Error("Pending() = true after all paydays dismissed")
		}
	})

	t.Run("re-alerts the following month", func(t *testing.T) {
		g := setupGate(t)
		data := payments(5)

		if err := g.Dismiss(5, today); err != nil {
			t.Fatal(err)
		}

		nextMonth := time.Date(2026, time.October, 5, 12, 0, 0, 0, time.UTC)
		_, pending, err := g.Pending(data, nextMonth)
		if err != nil {
			t.Fatal(err)
		}
		if !pending {
			t.Error("Pending() = false in the following month")
		}
	})
}

func TestGate_Simulate(t *testing.T) {
	g := setupGate(t)

	if _, ok := g.Simulate(models.DefaultFinancialData()); ok {
		t.Error("Simulate() = true with no payments")
	}

	// Always the first stored payment, regardless of date or seen state.
	data := payments(25, 5)
	p, ok := g.Simulate(data)
	if !ok || p.Day != 25 {
		t.Errorf("Simulate() = (%d, %v), want (25, true)", p.Day, ok)
	}

	today := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	if err := g.Dismiss(25, today); err != nil {
		t.Fatal(err)
	}
	if p, ok := g.Simulate(data); !ok || p.Day != 25 {
		t.Error("Simulate() respects seen state, want it ignored")
	}
}

func TestGate_Pruning(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "quinzena.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	g := NewGate(store)

	old := time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)
	prior := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC)

	if err := store.MarkSeen(SeenKey(old, 5)); err != nil {
		t.Fatal(err)
	}
	if err := store.MarkSeen(SeenKey(prior, 5)); err != nil {
		t.Fatal(err)
	}
	// A foreign key is left alone by the pruner.
	if err := store.MarkSeen("unrelated-marker"); err != nil {
		t.Fatal(err)
	}

	if err := g.Dismiss(20, today); err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		key  string
		want bool
	}{
		{SeenKey(old, 5), false},
		{SeenKey(prior, 5), true},
		{SeenKey(today, 20), true},
		{"unrelated-marker", true},
	}
	for _, c := range checks {
		seen, err := store.IsSeen(c.key)
		if err != nil {
			t.Fatal(err)
		}
		if seen != c.want {
			t.Errorf("after pruning, IsSeen(%q) = %v, want %v", c.key, seen, c.want)
		}
	}
}
