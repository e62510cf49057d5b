package services

import (
	"strings"
	"unicode/utf8"

	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/juju/errors"
)

const MaxSearchLength = 100

// Search returns the products whose name or description contains query,
// ignoring case. A blank query matches nothing.
func (s *Shop) Search(req Request, query string) ([]ProductView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ProductView{}, nil
	}
	if utf8.RuneCountInString(query) > MaxSearchLength {
		return nil, errors.NotValidf("search query longer than %d characters", MaxSearchLength)
	}
	products, err := s.store.FilterProducts(req.Context, repository.ProductFilter{Query: query})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return s.annotate(req, products, true)
}
