package config

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLite(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DatabaseURL: ":memory:"}

	db, err := InitDB(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, db.Config.TranslateError)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "oracle", DatabaseURL: "x"}, nil)
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
