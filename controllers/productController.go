package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/services"
	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
)

// productForm mirrors the product form fields. Checkbox values arrive as
// "on", so availability is read as a string.
type productForm struct {
	Name        string `form:"name"`
	NameEn      string `form:"name_en"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    uint   `form:"category"`
	Store       uint   `form:"store"`
	IsAvailable string `form:"is_available"`
}

func (f productForm) input() services.ProductInput {
	available := false
	switch strings.ToLower(f.IsAvailable) {
	case "on", "true", "1", "yes":
		available = true
	}
	return services.ProductInput{
		Name:        f.Name,
		NameEn:      f.NameEn,
		Description: f.Description,
		Price:       f.Price,
		CategoryID:  f.Category,
		StoreID:     f.Store,
		IsAvailable: available,
	}
}

func formFromProduct(p models.Product) productForm {
	available := ""
	if p.IsAvailable {
		available = "on"
	}
	return productForm{
		Name:        p.Name,
		NameEn:      p.NameEn,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.CategoryID,
		Store:       p.StoreID,
		IsAvailable: available,
	}
}

func productURL(id uint) string {
	return fmt.Sprintf("/shop/product/%d", id)
}

// formData assembles the product form page, including the category and store
// choices open to the viewer.
func (c *Controller) formData(ctx *gin.Context, form productForm, product *models.Product) (gin.H, error) {
	categories, stores, err := c.Shop.ProductFormChoices(c.request(ctx))
	if err != nil {
		return nil, err
	}
	return gin.H{"form": form, "product": product, "categories": categories, "stores": stores}, nil
}

func (c *Controller) renderProductForm(ctx *gin.Context, status int, form productForm, product *models.Product, problem error) {
	data, err := c.formData(ctx, form, product)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if problem != nil {
		c.fail(ctx, problem, "product_form.html", data)
		return
	}
	c.Render.Render(ctx, status, "product_form.html", data)
}

func (c *Controller) ProductDetail(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	detail, err := c.Shop.Product(c.request(ctx), id)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "product_detail.html", gin.H{
		"product":       detail.Product,
		"reviews":       detail.Reviews,
		"averageRating": detail.AverageRating,
		"canManage":     detail.CanManage,
	})
}

func (c *Controller) NewProductForm(ctx *gin.Context) {
	c.renderProductForm(ctx, http.StatusOK, productForm{IsAvailable: "on"}, nil, nil)
}

func (c *Controller) CreateProduct(ctx *gin.Context) {
	var form productForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderProductForm(ctx, http.StatusBadRequest, form, nil, bindingErrors(err))
		return
	}
	product, err := c.Shop.CreateProduct(c.request(ctx), form.input())
	if err != nil {
		c.renderProductForm(ctx, http.StatusBadRequest, form, nil, err)
		return
	}
	log.WithFields(log.Fields{"product": product.ID, "store": product.StoreID}).Info("Product created")
	ctx.Redirect(http.StatusFound, productURL(product.ID))
}

func (c *Controller) EditProductForm(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	product, err := c.Shop.ManagedProduct(c.request(ctx), id)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.renderProductForm(ctx, http.StatusOK, formFromProduct(product), &product, nil)
}

func (c *Controller) UpdateProduct(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	var form productForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderProductForm(ctx, http.StatusBadRequest, form, nil, bindingErrors(err))
		return
	}
	product, err := c.Shop.UpdateProduct(c.request(ctx), id, form.input())
	if err != nil {
		var fields services.FieldErrors
		if errors.As(err, &fields) {
			c.renderProductForm(ctx, http.StatusBadRequest, form, &product, err)
			return
		}
		c.fail(ctx, err, "", nil)
		return
	}
	ctx.Redirect(http.StatusFound, productURL(product.ID))
}

func (c *Controller) DeleteProductForm(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	product, err := c.Shop.ManagedProduct(c.request(ctx), id)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "product_confirm_delete.html", gin.H{"product": product})
}

func (c *Controller) DeleteProduct(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if err := c.Shop.DeleteProduct(c.request(ctx), id); err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	log.WithField("product", id).Info("Product deleted")
	ctx.Redirect(http.StatusFound, "/shop/catalog")
}

func (c *Controller) AddReview(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	var form struct {
		Rating  int    `form:"rating" binding:"required"`
		Comment string `form:"comment"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		problem := bindingErrors(err)
		if _, ok := problem["__all__"]; ok {
			problem = services.FieldErrors{"rating": "Enter a whole number."}
		}
		c.fail(ctx, problem, "", nil)
		return
	}
	if _, err := c.Shop.AddReview(c.request(ctx), id, form.Rating, form.Comment); err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	ctx.Redirect(http.StatusFound, productURL(id))
}

// UploadProductImages stores the multipart "images" files for a product.
func (c *Controller) UploadProductImages(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		c.fail(ctx, services.FieldErrors{"images": "Invalid form data."}, "", nil)
		return
	}

	var uploads []services.ImageUpload
	for _, file := range form.File["images"] {
		f, err := file.Open()
		if err != nil {
			c.fail(ctx, errors.Annotatef(err, "opening %s", file.Filename), "", nil)
			return
		}
		defer f.Close()
		uploads = append(uploads, services.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	images, err := c.Shop.AddProductImages(c.request(ctx), id, uploads)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if wantsJSON(ctx) {
		ctx.JSON(http.StatusCreated, gin.H{"message": "Files processed", "images": images})
		return
	}
	ctx.Redirect(http.StatusFound, productURL(id))
}
