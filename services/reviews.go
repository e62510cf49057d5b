package services

import (
	"strings"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

// AddReview appends the viewer's review of a product.
func (s *Shop) AddReview(req Request, productID uint, rating int, comment string) (models.Review, error) {
	if !req.Viewer.Authenticated() {
		return models.Review{}, errors.Unauthorizedf("reviews require a signed-in user")
	}
	if _, err := s.store.FindProduct(req.Context, productID); err != nil {
		return models.Review{}, errors.Trace(err)
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, FieldErrors{"rating": "Rating must be between 1 and 5."}
	}
	review := models.Review{
		UserID:    req.Viewer.UserID,
		ProductID: productID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: req.Now,
	}
	if err := s.store.CreateReview(req.Context, &review); err != nil {
		return review, errors.Trace(err)
	}
	return review, nil
}
