package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	mysqlLockDeadlock      = 1213
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// isToggleConflict reports whether err means a concurrent toggle on the same
// (user, product) pair won, either by inserting first or by winning a lock
// conflict. The losing transaction has been rolled back and can be replayed.
func isToggleConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlLockDeadlock
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// ToggleCartItem flips the (user, product) membership inside one transaction and
// reports whether the item is now in the cart. Losing a race against another
// toggle of the same pair is reported as AlreadyExists.
func (r *Repository) ToggleCartItem(ctx context.Context, userID, productID uint, now time.Time) (bool, error) {
	added := false
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		item := models.CartItem{UserID: userID, ProductID: productID, Quantity: 1, AddedAt: now}
		if err := tx.Omit("Product").Create(&item).Error; err != nil {
			return err
		}
		added = true
		return nil
	})
	if isToggleConflict(err) {
		return false, errors.NewAlreadyExists(err, fmt.Sprintf("cart item for user %d and product %d", userID, productID))
	}
	if err != nil {
		return false, errors.Annotatef(err, "toggling product %d for user %d", productID, userID)
	}
	return added, nil
}

// CartProductIDs returns the ids of the products in the user's cart.
func (r *Repository) CartProductIDs(ctx context.Context, userID uint) (set.Ints, error) {
	var ids []int
	err := r.conn(ctx).Model(&models.CartItem{}).Where("user_id = ?", userID).Pluck("product_id", &ids).Error
	if err != nil {
		return nil, errors.Annotatef(err, "loading cart of user %d", userID)
	}
	return set.NewInts(ids...), nil
}

// CartItems lists the user's cart, most recently added first.
func (r *Repository) CartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.conn(ctx).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, errors.Annotatef(err, "listing cart of user %d", userID)
}
