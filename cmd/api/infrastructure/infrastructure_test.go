package infrastructure

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bookmark-service/internal/config"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:       "sqlite",
			SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
		},
		Logger: config.LoggerConfig{Level: "info", SlowQuerySeconds: 1},
	}
}

func TestNewDatabase_SQLiteMigrates(t *testing.T) {
	db, err := NewDatabase(sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("bookmarks"))
}

func TestNewDatabase_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := NewDatabase(sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	err = db.Exec("INSERT INTO bookmarks (user_id, title, link) VALUES (?, ?, ?)", 777, "t", "http://x").Error
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "data.db", want: "data.db?_pragma=foreign_keys(1)"},
		{path: "file:data.db?cache=shared", want: "file:data.db?cache=shared&_pragma=foreign_keys(1)"},
		{path: "data.db?_pragma=foreign_keys(0)", want: "data.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.path))
		})
	}
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.Driver = "oracle"

	_, err := NewDatabase(cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestCloseDatabase_Nil(t *testing.T) {
	assert.NoError(t, CloseDatabase(nil))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.RedisConfig{Host: mr.Host(), Port: mr.Port(), PoolSize: 2}}

	rdb, err := NewRedisClient(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	assert.NoError(t, rdb.Ping(t.Context()))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	cfg := &config.Config{Redis: config.RedisConfig{Host: host, Port: port}}

	_, err := NewRedisClient(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}
