package repository

import (
	"context"
	"sort"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
	"gorm.io/gorm"
)

func (r *Repository) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.conn(ctx).Order("name").Order("id").Find(&categories).Error
	return categories, errors.Annotate(err, "listing categories")
}

func (r *Repository) FindCategory(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	if err := r.conn(ctx).First(&category, id).Error; err != nil {
		return category, notFound(err, "category %d", id)
	}
	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	return errors.Annotate(r.conn(ctx).Create(category).Error, "creating category")
}

// DeleteCategory removes the category and, with it, every product filed under
// it. Either all of it goes or nothing does.
func (r *Repository) DeleteCategory(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &ids).Error; err != nil {
			return errors.Annotatef(err, "listing products of category %d", id)
		}
		for _, productID := range ids {
			if err := deleteProduct(tx, productID); err != nil {
				return errors.Trace(err)
			}
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return errors.Annotatef(result.Error, "deleting category %d", id)
		}
		if result.RowsAffected == 0 {
			return errors.NotFoundf("category %d", id)
		}
		return nil
	})
}

type categoryCountRow struct {
	CategoryID   uint
	ProductCount int64
}

// CategoryProductCounts returns every category with its product count, most
// products first; ties keep id order.
func (r *Repository) CategoryProductCounts(ctx context.Context) ([]models.CategoryCount, error) {
	var categories []models.Category
	if err := r.conn(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Annotate(err, "listing categories")
	}

	var rows []categoryCountRow
	err := r.conn(ctx).Model(&models.Product{}).
		Select("category_id, COUNT(*) AS product_count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Annotate(err, "counting products per category")
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.ProductCount
	}

	out := make([]models.CategoryCount, 0, len(categories))
	for _, category := range categories {
		out = append(out, models.CategoryCount{Category: category, ProductCount: counts[category.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProductCount > out[j].ProductCount })
	return out, nil
}
