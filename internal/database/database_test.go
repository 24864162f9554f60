package database

import (
	"testing"

	"github.com/reviewlens/review-sentiment-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reviews.db", "reviews.db?_foreign_keys=on"},
		{"file::memory:?cache=shared", "file::memory:?cache=shared&_foreign_keys=on"},
		{"reviews.db?_foreign_keys=off", "reviews.db?_foreign_keys=off"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.in))
	}
}

func TestOpenSQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file::memory:"})
	require.NoError(t, err)
	defer Close(db)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpenMySQLBadDSN(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: config.DriverMySQL, DSN: "not a dsn"})
	assert.Error(t, err)
}
