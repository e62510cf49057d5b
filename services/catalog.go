package services

import (
	"strconv"
	"strings"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/juju/errors"
	"github.com/shopspring/decimal"
)

// CatalogQuery holds the optional catalog constraints; nil means unconstrained.
type CatalogQuery struct {
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// ParseCatalogQuery reads the category, min_price and max_price parameters.
// Blank values are ignored; malformed ones are NotValid.
func ParseCatalogQuery(category, minPrice, maxPrice string) (CatalogQuery, error) {
	var q CatalogQuery
	if category = strings.TrimSpace(category); category != "" {
		id, err := strconv.ParseUint(category, 10, 64)
		if err != nil {
			return q, errors.NotValidf("category %q", category)
		}
		categoryID := uint(id)
		q.CategoryID = &categoryID
	}
	var err error
	if q.MinPrice, err = parsePrice("min_price", minPrice); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parsePrice("max_price", maxPrice); err != nil {
		return q, err
	}
	return q, nil
}

func parsePrice(name, value string) (*decimal.Decimal, error) {
	if value = strings.TrimSpace(value); value == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return nil, errors.NotValidf("%s %q", name, value)
	}
	return &price, nil
}

type CatalogPage struct {
	Products   []ProductView     `json:"products"`
	Categories []models.Category `json:"categories"`
	Query      CatalogQuery      `json:"-"`
}

// Catalog lists the available products satisfying every supplied constraint,
// newest first. Catalog entries are never flagged as new.
func (s *Shop) Catalog(req Request, q CatalogQuery) (CatalogPage, error) {
	products, err := s.store.FilterProducts(req.Context, repository.ProductFilter{
		CategoryID:    q.CategoryID,
		MinPrice:      q.MinPrice,
		MaxPrice:      q.MaxPrice,
		AvailableOnly: true,
	})
	if err != nil {
		return CatalogPage{}, errors.Trace(err)
	}
	views, err := s.annotate(req, products, false)
	if err != nil {
		return CatalogPage{}, errors.Trace(err)
	}
	categories, err := s.store.Categories(req.Context)
	if err != nil {
		return CatalogPage{}, errors.Trace(err)
	}
	return CatalogPage{Products: views, Categories: categories, Query: q}, nil
}
