package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

// OrderPage selects a page of orders; Sort is "asc" or "desc" on creation time.
type OrderPage struct {
	Page  int
	Limit int
	Sort  string
}

func (r *Repository) Orders(ctx context.Context, p OrderPage) ([]models.Order, int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return nil, 0, errors.Annotate(err, "counting orders")
	}

	var orders []models.Order
	err := r.conn(ctx).
		Preload("Products").
		Order("created_at " + p.Sort).
		Limit(p.Limit).
		Offset((p.Page - 1) * p.Limit).
		Find(&orders).Error
	return orders, count, errors.Annotate(err, "listing orders")
}

func (r *Repository) UserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.conn(ctx).
		Preload("Products").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, errors.Annotatef(err, "listing orders of user %d", userID)
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	result := r.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return errors.Annotatef(result.Error, "updating order %d", id)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("order %d", id)
	}
	return nil
}
