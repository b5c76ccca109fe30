package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"quinzena/internal/constants"
	"quinzena/internal/models"
	"quinzena/internal/money"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS payment_days (
	id TEXT PRIMARY KEY,
	day INTEGER NOT NULL,
	amount_cents INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS savings_goals (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	target_cents INTEGER NOT NULL,
	current_cents INTEGER NOT NULL DEFAULT 0,
	icon TEXT NOT NULL,
	color TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS seen_markers (
	key TEXT PRIMARY KEY
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings on first initialization only.
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		defaults := models.DefaultFinancialData()
		if err := s.saveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetData() (models.FinancialData, error) {
	if s.db == nil {
		return models.FinancialData{}, fmt.Errorf("storage not loaded")
	}

	data := models.DefaultFinancialData()

	rows, err := s.db.Query("SELECT id, day, amount_cents, description FROM payment_days ORDER BY position")
	if err != nil {
		return models.FinancialData{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.PaymentDay
		var cents int64
		if err := rows.Scan(&p.ID, &p.Day, &cents, &p.Description); err != nil {
			return models.FinancialData{}, err
		}
		p.Amount = money.FromCents(cents)
		data.PaymentDays = append(data.PaymentDays, p)
	}
	if err := rows.Err(); err != nil {
		return models.FinancialData{}, err
	}

	goalRows, err := s.db.Query("SELECT id, name, target_cents, current_cents, icon, color FROM savings_goals ORDER BY position")
	if err != nil {
		return models.FinancialData{}, err
	}
	defer goalRows.Close()
	for goalRows.Next() {
		var g models.SavingsGoal
		var target, current int64
		if err := goalRows.Scan(&g.ID, &g.Name, &target, &current, &g.Icon, &g.Color); err != nil {
			return models.FinancialData{}, err
		}
		g.TargetAmount = money.FromCents(target)
		g.CurrentAmount = money.FromCents(current)
		g.Normalize()
		data.SavingsGoals = append(data.SavingsGoals, g)
	}
	if err := goalRows.Err(); err != nil {
		return models.FinancialData{}, err
	}

	settingRows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.FinancialData{}, err
	}
	defer settingRows.Close()
	for settingRows.Next() {
		var key, value string
		if err := settingRows.Scan(&key, &value); err != nil {
			return models.FinancialData{}, err
		}
		switch key {
		case "savings_percentage":
			if _, err := fmt.Sscanf(value, "%d", &data.SavingsPercentage); err != nil {
				return models.FinancialData{}, fmt.Errorf("parsing savings_percentage: %w", err)
			}
		case "monthly_expenses_cents":
			var cents int64
			if _, err := fmt.Sscanf(value, "%d", &cents); err != nil {
				return models.FinancialData{}, fmt.Errorf("parsing monthly_expenses_cents: %w", err)
			}
			data.MonthlyExpenses = money.FromCents(cents)
		case "user_name":
			data.UserName = value
		case "numbers_visible":
			data.NumbersVisible = value == "true"
		}
	}
	if err := settingRows.Err(); err != nil {
		return models.FinancialData{}, err
	}

	return data, nil
}

func (s *SQLiteStore) SaveData(data models.FinancialData) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM payment_days"); err != nil {
		return err
	}
	payStmt, err := tx.Prepare("INSERT INTO payment_days (id, day, amount_cents, description, position) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer payStmt.Close()
	for i, p := range data.PaymentDays {
		if _, err := payStmt.Exec(p.ID, p.Day, p.Amount.Cents(), p.Description, i); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM savings_goals"); err != nil {
		return err
	}
	goalStmt, err := tx.Prepare("INSERT INTO savings_goals (id, name, target_cents, current_cents, icon, color, position) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer goalStmt.Close()
	for i, g := range data.SavingsGoals {
		if _, err := goalStmt.Exec(g.ID, g.Name, g.TargetAmount.Cents(), g.CurrentAmount.Cents(), string(g.Icon), string(g.Color), i); err != nil {
			return err
		}
	}

	setStmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer setStmt.Close()
	if err := execSettings(setStmt, data); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) saveSettings(data models.FinancialData) error {
	stmt, err := s.db.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	return execSettings(stmt, data)
}

func execSettings(stmt *sql.Stmt, data models.FinancialData) error {
	if _, err := stmt.Exec("savings_percentage", fmt.Sprintf("%d", data.SavingsPercentage)); err != nil {
		return err
	}
	if _, err := stmt.Exec("monthly_expenses_cents", fmt.Sprintf("%d", data.MonthlyExpenses.Cents())); err != nil {
		return err
	}
	if _, err := stmt.Exec("user_name", data.UserName); err != nil {
		return err
	}
	if _, err := stmt.Exec("numbers_visible", fmt.Sprintf("%t", data.NumbersVisible)); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) IsSeen(key string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM seen_markers WHERE key = ?", key).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLiteStore) MarkSeen(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO seen_markers (key) VALUES (?)", key)
	return err
}

func (s *SQLiteStore) DeleteSeen(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec("DELETE FROM seen_markers WHERE key = ?", key)
	return err
}

func (s *SQLiteStore) SeenKeys() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	rows, err := s.db.Query("SELECT key FROM seen_markers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
