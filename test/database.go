package test

import (
	"path/filepath"
	"testing"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Connect connects models.DB to a new database in a temporary file.
// The connection is closed when the test finishes.
func Connect(t *testing.T) {
	require.Nil(t, models.Connect(TmpFile(t)), "Database connection failed")

	db := models.DB
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}
