package initializers

import (
	"database/sql"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := ReadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDB(Config{DBDriver: "oracle"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotSupported))
}

func TestMigrateSqlite(t *testing.T) {
	db, err := OpenDB(Config{DBDriver: "sqlite", DatabaseURL: "file::memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"products", "categories", "cart_items", "promotion_products", "posts"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestConfigLocation(t *testing.T) {
	loc, err := Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = Config{Timezone: "Mars/Olympus"}.Location()
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestSQLiteLowerFoldsCyrillic(t *testing.T) {
	db, err := OpenDB(Config{DBDriver: "sqlite", DatabaseURL: "file::memory:"})
	require.NoError(t, err)

	var lowered string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "Торт НАПОЛЕОН").Scan(&lowered).Error)
	assert.Equal(t, "торт наполеон", lowered)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	var missing sql.NullString
	require.NoError(t, sqlDB.QueryRow("SELECT LOWER(NULL)").Scan(&missing))
	assert.False(t, missing.Valid)
}
