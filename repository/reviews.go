package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	return errors.Annotate(r.conn(ctx).Omit("User").Create(review).Error, "creating review")
}

// ProductReviews lists a product's reviews, newest first.
func (r *Repository) ProductReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.conn(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, errors.Annotatef(err, "listing reviews of product %d", productID)
}
