// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/initializers"
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database. A single connection keeps
// the in-memory schema alive and serialises transactions.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := initializers.OpenDB(initializers.Config{DBDriver: "sqlite", DatabaseURL: "file::memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, initializers.Migrate(db))
	return db
}

// NewFileDB returns a migrated sqlite database in a temporary file served by a
// pool of conns connections. Writers take the database lock when their
// transaction begins and wait up to five seconds for it.
func NewFileDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "shop.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := initializers.OpenDB(initializers.Config{DBDriver: "sqlite", DatabaseURL: dsn})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, initializers.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	user := models.User{
		Username:         username,
		Email:            username + "@example.com",
		Password:         "x",
		Role:             role,
		AccountActivated: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func CreateStore(t *testing.T, db *gorm.DB, name string, owner models.User) models.Store {
	t.Helper()
	store := models.Store{Name: name, City: "Moscow", OwnerID: owner.ID}
	require.NoError(t, db.Create(&store).Error)
	return store
}

// ProductSpec describes a fixture product; zero CreatedAt means "now".
type ProductSpec struct {
	Name        string
	Description string
	Price       string
	Category    models.Category
	Store       models.Store
	Unavailable bool
	CreatedAt   time.Time
}

func CreateProduct(t *testing.T, db *gorm.DB, spec ProductSpec) models.Product {
	t.Helper()
	product := models.Product{
		Name:        spec.Name,
		Description: spec.Description,
		Price:       decimal.RequireFromString(spec.Price),
		CategoryID:  spec.Category.ID,
		StoreID:     spec.Store.ID,
		IsAvailable: !spec.Unavailable,
		CreatedAt:   spec.CreatedAt,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func CreatePromotion(t *testing.T, db *gorm.DB, title string, start, end time.Time, products ...models.Product) models.Promotion {
	t.Helper()
	promotion := models.Promotion{
		Title:     title,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
		Products:  products,
	}
	require.NoError(t, db.Create(&promotion).Error)
	return promotion
}

// Date is a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
