package services

import (
	"context"
	"io"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// Store is the persistence the shop needs.
type Store interface {
	FilterProducts(ctx context.Context, f repository.ProductFilter) ([]models.Product, error)
	FindProduct(ctx context.Context, id uint) (models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	AddProductImage(ctx context.Context, image *models.ProductImage) error

	Categories(ctx context.Context) ([]models.Category, error)
	FindCategory(ctx context.Context, id uint) (models.Category, error)
	CategoryProductCounts(ctx context.Context) ([]models.CategoryCount, error)
	Stores(ctx context.Context) ([]models.Store, error)
	StoresOwnedBy(ctx context.Context, userID uint) ([]models.Store, error)
	FindStore(ctx context.Context, id uint) (models.Store, error)

	Promotions(ctx context.Context) ([]models.Promotion, error)

	ToggleCartItem(ctx context.Context, userID, productID uint, now time.Time) (bool, error)
	CartProductIDs(ctx context.Context, userID uint) (set.Ints, error)
	CartItems(ctx context.Context, userID uint) ([]models.CartItem, error)

	CreateReview(ctx context.Context, review *models.Review) error
	ProductReviews(ctx context.Context, productID uint) ([]models.Review, error)

	UserOrders(ctx context.Context, userID uint) ([]models.Order, error)
}

// ImageStore keeps uploaded product images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Shop struct {
	store  Store
	images ImageStore
}

// NewShop returns the shop service. images may be nil, in which case image
// uploads are not supported.
func NewShop(store Store, images ImageStore) *Shop {
	return &Shop{store: store, images: images}
}

// ProductView is a product annotated for the current viewer.
type ProductView struct {
	models.Product
	InCart bool `json:"inCart"`
	IsNew  bool `json:"isNew"`
}

func (s *Shop) cartSet(req Request) (set.Ints, error) {
	if !req.Viewer.Authenticated() {
		return set.NewInts(), nil
	}
	ids, err := s.store.CartProductIDs(req.Context, req.Viewer.UserID)
	return ids, errors.Trace(err)
}

// annotate marks each product with cart membership and, when withRecency is set,
// the recency flag computed against req.Now.
func (s *Shop) annotate(req Request, products []models.Product, withRecency bool) ([]ProductView, error) {
	inCart, err := s.cartSet(req)
	if err != nil {
		return nil, errors.Trace(err)
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product: p,
			InCart:  inCart.Contains(int(p.ID)),
			IsNew:   withRecency && IsNew(req.Now, p.CreatedAt),
		})
	}
	return views, nil
}

// Orders lists the viewer's orders.
func (s *Shop) Orders(req Request) ([]models.Order, error) {
	if !req.Viewer.Authenticated() {
		return nil, errors.Unauthorizedf("orders require a signed-in user")
	}
	orders, err := s.store.UserOrders(req.Context, req.Viewer.UserID)
	return orders, errors.Trace(err)
}
