package testutil

import (
	"testing"

	"vc-go/internal/database"
	"vc-go/internal/vc"
)

// NewTestOperationLog creates a new in-memory operation log with schema
// applied. The log is automatically closed when the test completes.
func NewTestOperationLog(t *testing.T) vc.OperationLog {
	t.Helper()

	log, err := database.NewSQLiteOperationLog(":memory:")
	if err != nil {
		t.Fatalf("failed to open operation log: %v", err)
	}

	t.Cleanup(func() {
		log.Close()
	})

	return log
}
