package database

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	for _, k := range Kinds() {
		d, err := Dialector(k, k.DefaultDSN("x"))
		require.NoError(t, err)
		assert.NotNil(t, d)
	}

	_, err := Dialector(Kind("oracle"), "x")
	assert.Error(t, err)
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), Options{Kind: SQLite})
	assert.Error(t, err)
}

func TestOpen_SQLiteMemory(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	db, err := Open(context.Background(), Options{
		Kind:         SQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		Logger:       logger,
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, Close(db)) }()

	var n int
	require.NoError(t, db.Raw("SELECT 1").Scan(&n).Error)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestDefaultOptions_SQLiteSingleConnection(t *testing.T) {
	opts := DefaultOptions(SQLite, ":memory:")
	assert.Equal(t, 1, opts.MaxOpenConns)

	opts = DefaultOptions(PostgreSQL, "dsn")
	assert.Equal(t, 100, opts.MaxOpenConns)
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
