package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quinzena/internal/logger"
	"quinzena/internal/models"
)

// Store is the persisted document layout: the financial record plus the
// seen-marker namespace, under a single version field.
type Store struct {
	Version int                  `json:"version"`
	Data    models.FinancialData `json:"data"`
	Seen    map[string]bool      `json:"seen"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Data:    models.DefaultFinancialData(),
		Seen:    make(map[string]bool),
	}

	return s.save()
}

// Load reads the persisted document. A missing or unparseable file is not an
// error: the store falls back to defaults and the next save overwrites the
// blob. Prior valid in-memory state is never corrupted by a bad read.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = &Store{
				Version: 1,
				Data:    models.DefaultFinancialData(),
				Seen:    make(map[string]bool),
			}
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	loaded := &Store{}
	if err := json.Unmarshal(data, loaded); err != nil {
		logger.Warn("Persisted data is malformed, falling back to defaults", "path", s.path, "error", err)
		s.store = &Store{
			Version: 1,
			Data:    models.DefaultFinancialData(),
			Seen:    make(map[string]bool),
		}
		return nil
	}

	if loaded.Data.PaymentDays == nil {
		loaded.Data.PaymentDays = []models.PaymentDay{}
	}
	if loaded.Data.SavingsGoals == nil {
		loaded.Data.SavingsGoals = []models.SavingsGoal{}
	}
	if loaded.Seen == nil {
		loaded.Seen = make(map[string]bool)
	}
	for i := range loaded.Data.SavingsGoals {
		loaded.Data.SavingsGoals[i].Normalize()
	}

	s.store = loaded
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetData() (models.FinancialData, error) {
	if s.store == nil {
		return models.FinancialData{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Data, nil
}

func (s *JSONStore) SaveData(data models.FinancialData) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Data = data
	return s.save()
}

func (s *JSONStore) IsSeen(key string) (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	return s.store.Seen[key], nil
}

func (s *JSONStore) MarkSeen(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Seen[key] = true
	return s.save()
}

func (s *JSONStore) DeleteSeen(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.store.Seen, key)
	return s.save()
}

func (s *JSONStore) SeenKeys() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	keys := make([]string, 0, len(s.store.Seen))
	for k := range s.store.Seen {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
