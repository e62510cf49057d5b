// Package repository is the gorm-backed persistence adapter for the shop and blog.
package repository

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// Repository answers filtered, ordered and aggregated queries over the models and
// performs transactional writes.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// notFound converts gorm.ErrRecordNotFound into a NotFound error for the named
// entity and traces anything else.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFoundf(format, args...)
	}
	return errors.Trace(err)
}
