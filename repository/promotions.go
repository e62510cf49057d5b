package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

// Promotions returns every promotion with its products, most recent start first.
// Date segmentation happens in the caller against the request's date.
func (r *Repository) Promotions(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.conn(ctx).
		Preload("Products").
		Order("start_date DESC").
		Order("id DESC").
		Find(&promotions).Error
	return promotions, errors.Annotate(err, "listing promotions")
}

func (r *Repository) CreatePromotion(ctx context.Context, promotion *models.Promotion, productIDs []uint) error {
	if len(productIDs) > 0 {
		if err := r.conn(ctx).Where("id IN ?", productIDs).Find(&promotion.Products).Error; err != nil {
			return errors.Annotate(err, "loading promotion products")
		}
		if len(promotion.Products) != len(productIDs) {
			return errors.NotFoundf("one or more promotion products")
		}
	}
	return errors.Annotate(r.conn(ctx).Create(promotion).Error, "creating promotion")
}

func (r *Repository) DeletePromotion(ctx context.Context, id uint) error {
	promotion := models.Promotion{}
	promotion.ID = id
	if err := r.conn(ctx).Model(&promotion).Association("Products").Clear(); err != nil {
		return errors.Annotatef(err, "unlinking products of promotion %d", id)
	}
	result := r.conn(ctx).Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return errors.Annotatef(result.Error, "deleting promotion %d", id)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("promotion %d", id)
	}
	return nil
}
