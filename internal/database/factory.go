package database

import (
	"fmt"
	"os"
	"path/filepath"

	"vc-go/internal/config"
	"vc-go/internal/vc"
)

// NewOperationLogFromConfig creates an OperationLog implementation based
// on the database config type.
func NewOperationLogFromConfig(cfg config.DatabaseConfig) (vc.OperationLog, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteOperationLog(filepath.Join(cfg.DataDir, "operations.db"))
	case "memory":
		return NewSQLiteOperationLog(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
