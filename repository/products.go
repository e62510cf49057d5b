package repository

import (
	"context"
	"strings"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter is a conjunction of optional constraints. Nil bounds and an empty
// Query impose nothing.
type ProductFilter struct {
	CategoryID    *uint
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	AvailableOnly bool
	// Query matches name or description as a case-insensitive substring.
	Query string
	Limit int
}

const likeEscape = "!"

func likePattern(q string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

// FilterProducts returns the products matching f, newest first.
func (r *Repository) FilterProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	query := r.conn(ctx).Model(&models.Product{})
	if f.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.Query != "" {
		pattern := likePattern(f.Query)
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(description) LIKE ? ESCAPE '"+likeEscape+"'",
			pattern, pattern,
		)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Images").
		Order("created_at DESC").
		Order("id DESC").
		Find(&products).Error
	return products, errors.Annotate(err, "filtering products")
}

// FindProduct loads a product with its category, store and images.
func (r *Repository) FindProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := r.conn(ctx).
		Preload("Category").
		Preload("Store").
		Preload("Images").
		First(&product, id).Error
	if err != nil {
		return product, notFound(err, "product %d", id)
	}
	return product, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	err := r.conn(ctx).Omit(clause.Associations).Create(product).Error
	return errors.Annotate(err, "creating product")
}

// UpdateProduct writes the mutable columns of product; created_at is never touched.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) error {
	err := r.conn(ctx).Model(product).
		Select("name", "name_en", "description", "price", "category_id", "store_id", "is_available").
		Omit(clause.Associations).
		Updates(product).Error
	return errors.Annotatef(err, "updating product %d", product.ID)
}

// DeleteProduct removes a product and everything hanging off it in one transaction.
func (r *Repository) DeleteProduct(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProduct(tx, id)
	})
}

func deleteProduct(tx *gorm.DB, id uint) error {
	for _, dependent := range []any{&models.Review{}, &models.CartItem{}, &models.ProductImage{}} {
		if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
			return errors.Annotatef(err, "deleting dependents of product %d", id)
		}
	}
	if err := tx.Exec("DELETE FROM promotion_products WHERE product_id = ?", id).Error; err != nil {
		return errors.Annotatef(err, "unlinking promotions of product %d", id)
	}
	result := tx.Delete(&models.Product{}, id)
	if result.Error != nil {
		return errors.Annotatef(result.Error, "deleting product %d", id)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("product %d", id)
	}
	return nil
}

func (r *Repository) AddProductImage(ctx context.Context, image *models.ProductImage) error {
	err := r.conn(ctx).Create(image).Error
	return errors.Annotate(err, "saving product image")
}
