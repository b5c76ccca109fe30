package storage

import "quinzena/internal/models"

// Provider abstracts the persistence backend. The JSON store is the
// canonical single-document backend; the SQLite store offers the same
// contract over a relational schema.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Financial data. GetData substitutes documented defaults when nothing
	// has been persisted; SaveData rewrites the full record.
	GetData() (models.FinancialData, error)
	SaveData(models.FinancialData) error

	// Payday seen markers, namespaced separately from the financial record.
	IsSeen(key string) (bool, error)
	MarkSeen(key string) error
	DeleteSeen(key string) error
	SeenKeys() ([]string, error)

	// Utils
	GetConfigPath() string
}
