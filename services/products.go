package services

import (
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/shopspring/decimal"
)

var priceCeiling = decimal.New(1, 8)

// ProductInput is the raw product form.
type ProductInput struct {
	Name        string
	NameEn      string
	Description string
	Price       string
	CategoryID  uint
	StoreID     uint
	IsAvailable bool
}

func (s *Shop) canManage(viewer Viewer, store models.Store) bool {
	return viewer.IsAdmin() || (viewer.Authenticated() && store.OwnerID == viewer.UserID)
}

// validate checks in and returns the product fields it describes. Nothing is
// written.
func (s *Shop) validate(req Request, in ProductInput) (models.Product, error) {
	problems := FieldErrors{}
	product := models.Product{
		Name:        strings.TrimSpace(in.Name),
		NameEn:      strings.TrimSpace(in.NameEn),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		StoreID:     in.StoreID,
		IsAvailable: in.IsAvailable,
	}

	switch {
	case product.Name == "":
		problems["name"] = "This field is required."
	case utf8.RuneCountInString(product.Name) > 200:
		problems["name"] = "Ensure this value has at most 200 characters."
	}
	if utf8.RuneCountInString(product.NameEn) > 200 {
		problems["name_en"] = "Ensure this value has at most 200 characters."
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	switch {
	case strings.TrimSpace(in.Price) == "":
		problems["price"] = "This field is required."
	case err != nil:
		problems["price"] = "Enter a number."
	case price.IsNegative():
		problems["price"] = "Ensure this value is greater than or equal to 0."
	case !price.Equal(price.Round(2)):
		problems["price"] = "Ensure that there are no more than 2 decimal places."
	case price.GreaterThanOrEqual(priceCeiling):
		problems["price"] = "Ensure that there are no more than 10 digits in total."
	default:
		product.Price = price.Round(2)
	}

	if _, err := s.store.FindCategory(req.Context, in.CategoryID); errors.Is(err, errors.NotFound) {
		problems["category"] = "Select a valid choice."
	} else if err != nil {
		return product, errors.Trace(err)
	}

	store, err := s.store.FindStore(req.Context, in.StoreID)
	switch {
	case errors.Is(err, errors.NotFound):
		problems["store"] = "Select a valid choice."
	case err != nil:
		return product, errors.Trace(err)
	case !s.canManage(req.Viewer, store):
		problems["store"] = "You can only list products in your own stores."
	}
	return product, problems.orNil()
}

// managedProduct loads a product the viewer is allowed to change.
func (s *Shop) managedProduct(req Request, id uint) (models.Product, error) {
	if !req.Viewer.Authenticated() {
		return models.Product{}, errors.Unauthorizedf("managing products requires a signed-in user")
	}
	product, err := s.store.FindProduct(req.Context, id)
	if err != nil {
		return product, errors.Trace(err)
	}
	if !s.canManage(req.Viewer, product.Store) {
		return product, errors.Forbiddenf("product %d belongs to another store", id)
	}
	return product, nil
}

// ManagedProduct returns the product for an edit or delete form.
func (s *Shop) ManagedProduct(req Request, id uint) (models.Product, error) {
	return s.managedProduct(req, id)
}

// ProductFormChoices lists the categories and the stores the viewer may use.
func (s *Shop) ProductFormChoices(req Request) ([]models.Category, []models.Store, error) {
	if !req.Viewer.Authenticated() {
		return nil, nil, errors.Unauthorizedf("managing products requires a signed-in user")
	}
	categories, err := s.store.Categories(req.Context)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	var stores []models.Store
	if req.Viewer.IsAdmin() {
		stores, err = s.store.Stores(req.Context)
	} else {
		stores, err = s.store.StoresOwnedBy(req.Context, req.Viewer.UserID)
	}
	return categories, stores, errors.Trace(err)
}

func (s *Shop) CreateProduct(req Request, in ProductInput) (models.Product, error) {
	if !req.Viewer.Authenticated() {
		return models.Product{}, errors.Unauthorizedf("managing products requires a signed-in user")
	}
	product, err := s.validate(req, in)
	if err != nil {
		return product, errors.Trace(err)
	}
	product.CreatedAt = req.Now
	if err := s.store.CreateProduct(req.Context, &product); err != nil {
		return product, errors.Trace(err)
	}
	return product, nil
}

func (s *Shop) UpdateProduct(req Request, id uint, in ProductInput) (models.Product, error) {
	existing, err := s.managedProduct(req, id)
	if err != nil {
		return existing, errors.Trace(err)
	}
	product, err := s.validate(req, in)
	if err != nil {
		return existing, errors.Trace(err)
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := s.store.UpdateProduct(req.Context, &product); err != nil {
		return existing, errors.Trace(err)
	}
	return product, nil
}

func (s *Shop) DeleteProduct(req Request, id uint) error {
	if _, err := s.managedProduct(req, id); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(s.store.DeleteProduct(req.Context, id))
}

type ProductDetail struct {
	Product       ProductView     `json:"product"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	CanManage     bool            `json:"canManage"`
}

func (s *Shop) Product(req Request, id uint) (ProductDetail, error) {
	product, err := s.store.FindProduct(req.Context, id)
	if err != nil {
		return ProductDetail{}, errors.Trace(err)
	}
	views, err := s.annotate(req, []models.Product{product}, true)
	if err != nil {
		return ProductDetail{}, errors.Trace(err)
	}
	reviews, err := s.store.ProductReviews(req.Context, id)
	if err != nil {
		return ProductDetail{}, errors.Trace(err)
	}
	detail := ProductDetail{
		Product:   views[0],
		Reviews:   reviews,
		CanManage: s.canManage(req.Viewer, product.Store),
	}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		detail.AverageRating = float64(sum) / float64(len(reviews))
	}
	return detail, nil
}

// ImageUpload is one uploaded file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AddProductImages stores each upload and records it against the product.
// Uploads stop at the first failure; images already stored stay recorded.
func (s *Shop) AddProductImages(req Request, id uint, uploads []ImageUpload) ([]models.ProductImage, error) {
	if s.images == nil {
		return nil, errors.NotSupportedf("image uploads")
	}
	if _, err := s.managedProduct(req, id); err != nil {
		return nil, errors.Trace(err)
	}
	if len(uploads) == 0 {
		return nil, FieldErrors{"images": "No files uploaded."}
	}
	var saved []models.ProductImage
	for _, upload := range uploads {
		key := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), strings.ToLower(path.Ext(upload.Filename)))
		url, err := s.images.Upload(req.Context, key, upload.Body, upload.ContentType)
		if err != nil {
			return saved, errors.Annotatef(err, "uploading %q", upload.Filename)
		}
		image := models.ProductImage{ProductID: id, Url: url, CreatedAt: req.Now}
		if err := s.store.AddProductImage(req.Context, &image); err != nil {
			return saved, errors.Trace(err)
		}
		saved = append(saved, image)
	}
	return saved, nil
}
