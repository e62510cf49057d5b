package services

import (
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/juju/errors"
)

const (
	homeNewArrivals   = 5
	homePromotions    = 5
	homeTopCategories = 3
)

type HomePage struct {
	NewArrivals   []ProductView      `json:"newArrivals"`
	Promotions    []models.Promotion `json:"promotions"`
	TopCategories []models.Category  `json:"topCategories"`
}

// Home assembles the landing page: the newest available products, the active
// promotions and three top categories.
func (s *Shop) Home(req Request) (HomePage, error) {
	products, err := s.store.FilterProducts(req.Context, repository.ProductFilter{
		AvailableOnly: true,
		Limit:         homeNewArrivals,
	})
	if err != nil {
		return HomePage{}, errors.Trace(err)
	}
	arrivals, err := s.annotate(req, products, true)
	if err != nil {
		return HomePage{}, errors.Trace(err)
	}

	promotions, err := s.store.Promotions(req.Context)
	if err != nil {
		return HomePage{}, errors.Trace(err)
	}
	active := SegmentPromotions(promotions, req.Today()).Active
	if len(active) > homePromotions {
		active = active[:homePromotions]
	}

	counts, err := s.store.CategoryProductCounts(req.Context)
	if err != nil {
		return HomePage{}, errors.Trace(err)
	}

	return HomePage{
		NewArrivals:   arrivals,
		Promotions:    active,
		TopCategories: SelectTopCategories(counts, homeTopCategories, req.Picker),
	}, nil
}

// SelectTopCategories takes up to n categories that have products, in the given
// order (counts must be ranked by descending product count), then fills any
// remaining places with categories drawn uniformly at random, without
// replacement, from the rest. Fewer than n categories in total yields fewer
// than n.
func SelectTopCategories(counts []models.CategoryCount, n int, picker Picker) []models.Category {
	selected := make([]models.Category, 0, n)
	var rest []models.Category
	for _, c := range counts {
		if c.ProductCount > 0 && len(selected) < n {
			selected = append(selected, c.Category)
			continue
		}
		rest = append(rest, c.Category)
	}
	for len(selected) < n && len(rest) > 0 {
		i := picker.Intn(len(rest))
		selected = append(selected, rest[i])
		rest = append(rest[:i], rest[i+1:]...)
	}
	return selected
}
