package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/testutil"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juju/errors"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsToggleConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, true},
		{"wrapped duplicate key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"mysql deadlock", &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}, true},
		{"mysql lock wait timeout", &mysql.MySQLError{Number: 1205}, false},
		{"postgres serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"postgres deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, true},
		{"sqlite locked", errors.Annotate(sqlite3.Error{Code: sqlite3.ErrLocked}, "toggling"), true},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, false},
		{"other", errors.New("connection refused"), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, isToggleConflict(test.err))
		})
	}
}

func TestToggleCartItemReportsDeadlockAsAlreadyExists(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner", models.RoleUser)
	cat := testutil.CreateCategory(t, db, "Cakes")
	store := testutil.CreateStore(t, db, "Shop", owner)
	p := testutil.CreateProduct(t, db, testutil.ProductSpec{Name: "p", Price: "1", Category: cat, Store: store})

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:deadlock", func(tx *gorm.DB) {
		if tx.Statement.Table == "cart_items" {
			tx.AddError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})
		}
	}))

	_, err := New(db).ToggleCartItem(context.Background(), owner.ID, p.ID, time.Now())
	assert.True(t, errors.Is(err, errors.AlreadyExists), "got %v", err)
}
