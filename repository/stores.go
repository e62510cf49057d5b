package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

func (r *Repository) Stores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	err := r.conn(ctx).Preload("Owner").Order("name").Find(&stores).Error
	return stores, errors.Annotate(err, "listing stores")
}

func (r *Repository) FindStore(ctx context.Context, id uint) (models.Store, error) {
	var store models.Store
	if err := r.conn(ctx).First(&store, id).Error; err != nil {
		return store, notFound(err, "store %d", id)
	}
	return store, nil
}

func (r *Repository) CreateStore(ctx context.Context, store *models.Store) error {
	return errors.Annotate(r.conn(ctx).Omit("Owner").Create(store).Error, "creating store")
}

func (r *Repository) StoresOwnedBy(ctx context.Context, userID uint) ([]models.Store, error) {
	var stores []models.Store
	err := r.conn(ctx).Where("owner_id = ?", userID).Order("name").Find(&stores).Error
	return stores, errors.Annotatef(err, "listing stores of user %d", userID)
}
