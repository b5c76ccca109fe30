package storage

import (
	"path/filepath"
	"testing"

	"quinzena/internal/models"
	"quinzena/internal/money"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quinzena.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_LoadBeforeInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "quinzena.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() without prior init expected error, got nil")
	}
}

func TestSQLiteStore_InitSeedsDefaults(t *testing.T) {
	store := setupSQLiteStore(t)

	data, err := store.GetData()
	if err != nil {
		t.Fatalf("GetData() unexpected error: %v", err)
	}
	if data.SavingsPercentage != 15 {
		t.Errorf("default savings percentage = %d, want 15", data.SavingsPercentage)
	}
	if !data.NumbersVisible {
		t.Error("default numbers visible = false, want true")
	}
	if len(data.PaymentDays) != 0 || len(data.SavingsGoals) != 0 {
		t.Errorf("fresh store has records: %+v", data)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quinzena.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	saved := models.FinancialData{
		PaymentDays: []models.PaymentDay{
			{ID: "p2", Day: 20, Amount: money.FromCents(150000), Description: "Quinzena"},
			{ID: "p1", Day: 5, Amount: money.FromCents(300000)},
		},
		SavingsPercentage: 25,
		SavingsGoals: []models.SavingsGoal{
			{ID: "g1", Name: "Reserva", TargetAmount: money.FromCents(1000000), CurrentAmount: money.FromCents(50000), Icon: models.IconShield, Color: models.ColorWarning},
		},
		MonthlyExpenses: money.FromCents(220000),
		UserName:        "Bruno",
		NumbersVisible:  false,
	}
	if err := store.SaveData(saved); err != nil {
		t.Fatalf("SaveData() unexpected error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() after init unexpected error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetData()
	if err != nil {
		t.Fatal(err)
	}

	// Stored order is preserved by position, not sorted by day.
	if len(got.PaymentDays) != 2 || got.PaymentDays[0].ID != "p2" || got.PaymentDays[1].ID != "p1" {
		t.Errorf("payment order not preserved: %+v", got.PaymentDays)
	}
	if got.PaymentDays[0].Amount != money.FromCents(150000) || got.PaymentDays[0].Description != "Quinzena" {
		t.Errorf("payment fields did not survive round trip: %+v", got.PaymentDays[0])
	}
	if len(got.SavingsGoals) != 1 || got.SavingsGoals[0].Icon != models.IconShield {
		t.Errorf("goals did not survive round trip: %+v", got.SavingsGoals)
	}
	if got.SavingsPercentage != 25 || got.MonthlyExpenses != money.FromCents(220000) || got.UserName != "Bruno" || got.NumbersVisible {
		t.Errorf("settings did not survive round trip: %+v", got)
	}
}

func TestSQLiteStore_SaveReplacesRecords(t *testing.T) {
	store := setupSQLiteStore(t)

	first := models.DefaultFinancialData()
	first.PaymentDays = []models.PaymentDay{
		{ID: "p1", Day: 5, Amount: money.FromCents(100)},
		{ID: "p2", Day: 20, Amount: money.FromCents(200)},
	}
	if err := store.SaveData(first); err != nil {
		t.Fatal(err)
	}

	second := models.DefaultFinancialData()
	second.PaymentDays = []models.PaymentDay{
		{ID: "p3", Day: 10, Amount: money.FromCents(300)},
	}
	if err := store.SaveData(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetData()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.PaymentDays) != 1 || got.PaymentDays[0].ID != "p3" {
		t.Errorf("SaveData() did not replace prior records: %+v", got.PaymentDays)
	}
}

func TestSQLiteStore_SeenMarkers(t *testing.T) {
	store := setupSQLiteStore(t)

	const key = "payday-seen-2026-8-20"

	seen, err := store.IsSeen(key)
	if err != nil {
		t.Fatal(err)
	}
	if seen {
		t.Error("IsSeen() = true before MarkSeen")
	}

	if err := store.MarkSeen(key); err != nil {
		t.Fatal(err)
	}
	// Marking twice is fine.
	if err := store.MarkSeen(key); err != nil {
		t.Fatalf("repeat MarkSeen() unexpected error: %v", err)
	}

	seen, err = store.IsSeen(key)
	if err != nil {
		t.Fatal(err)
	}
	if !seen {
		t.Error("IsSeen() = false after MarkSeen")
	}

	keys, err := store.SeenKeys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != key {
		t.Errorf("SeenKeys() = %v, want [%s]", keys, key)
	}

	if err := store.DeleteSeen(key); err != nil {
		t.Fatal(err)
	}
	seen, _ = store.IsSeen(key)
	if seen {
		t.Error("IsSeen() = true after DeleteSeen")
	}
}
