package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// respondWithError writes the JSON error body used by the back office. A
// NotValid error wins over the NotFound it may wrap.
func respondWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := msgInternalServerError
	switch {
	case errors.Is(err, errors.NotValid):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, errors.NotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errors.AlreadyExists):
		status, message = http.StatusConflict, err.Error()
	default:
		log.WithError(err).WithField("path", ctx.Request.URL.Path).Error("Back office request failed")
	}
	ctx.JSON(status, gin.H{"message": message})
}

func bindJSONForm(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBind(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "errors": bindingErrors(err)})
		return false
	}
	return true
}

func (c *Controller) ListCategories(ctx *gin.Context) {
	categories, err := c.Repo.Categories(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (c *Controller) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if !bindJSONForm(ctx, &category) {
		return
	}
	category.ID = 0
	if err := c.Repo.CreateCategory(ctx.Request.Context(), &category); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category together with its products.
func (c *Controller) DeleteCategory(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if err := c.Repo.DeleteCategory(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

func (c *Controller) ListStores(ctx *gin.Context) {
	stores, err := c.Repo.Stores(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (c *Controller) CreateStore(ctx *gin.Context) {
	var form struct {
		Name        string `json:"name" form:"name" binding:"required,max=150"`
		City        string `json:"city" form:"city" binding:"max=100"`
		Address     string `json:"address" form:"address"`
		Description string `json:"description" form:"description"`
		OwnerID     uint   `json:"ownerId" form:"owner_id" binding:"required"`
	}
	if !bindJSONForm(ctx, &form) {
		return
	}
	if _, err := c.Repo.FindUser(ctx.Request.Context(), form.OwnerID); err != nil {
		if errors.Is(err, errors.NotFound) {
			err = errors.NewNotValid(err, "store owner")
		}
		respondWithError(ctx, err)
		return
	}
	store := models.Store{
		Name:        form.Name,
		City:        form.City,
		Address:     form.Address,
		Description: form.Description,
		OwnerID:     form.OwnerID,
		CreatedAt:   c.Clock.Now(),
	}
	if err := c.Repo.CreateStore(ctx.Request.Context(), &store); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, store)
}

func (c *Controller) ListPromotions(ctx *gin.Context) {
	promotions, err := c.Repo.Promotions(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"promotions": promotions})
}

func (c *Controller) CreatePromotion(ctx *gin.Context) {
	var form struct {
		Title              string `json:"title" form:"title" binding:"required,max=150"`
		Description        string `json:"description" form:"description"`
		StartDate          string `json:"startDate" form:"start_date" binding:"required"`
		EndDate            string `json:"endDate" form:"end_date" binding:"required"`
		DiscountPercentage int    `json:"discountPercentage" form:"discount_percentage" binding:"min=0,max=100"`
		ProductIDs         []uint `json:"productIds" form:"product_ids"`
	}
	if !bindJSONForm(ctx, &form) {
		return
	}
	start, startErr := time.Parse(dateLayout, strings.TrimSpace(form.StartDate))
	end, endErr := time.Parse(dateLayout, strings.TrimSpace(form.EndDate))
	problems := gin.H{}
	if startErr != nil {
		problems["startDate"] = "Enter a valid date."
	}
	if endErr != nil {
		problems["endDate"] = "Enter a valid date."
	}
	if len(problems) == 0 && end.Before(start) {
		problems["endDate"] = "End date must not be before the start date."
	}
	if len(problems) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "errors": problems})
		return
	}

	promotion := models.Promotion{
		Title:              form.Title,
		Description:        form.Description,
		StartDate:          datatypes.Date(start),
		EndDate:            datatypes.Date(end),
		DiscountPercentage: form.DiscountPercentage,
	}
	if err := c.Repo.CreatePromotion(ctx.Request.Context(), &promotion, form.ProductIDs); err != nil {
		if errors.Is(err, errors.NotFound) {
			err = errors.NewNotValid(err, "promotion products")
		}
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, promotion)
}

func (c *Controller) DeletePromotion(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if err := c.Repo.DeletePromotion(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Promotion deleted successfully."})
}

func (c *Controller) ListPosts(ctx *gin.Context) {
	posts, err := c.Repo.Posts(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost writes a post authored by the caller. Posts default to drafts.
func (c *Controller) CreatePost(ctx *gin.Context) {
	var form struct {
		Title  string `json:"title" form:"title" binding:"required,max=250"`
		Slug   string `json:"slug" form:"slug" binding:"max=250"`
		Body   string `json:"body" form:"body" binding:"required"`
		Status string `json:"status" form:"status" binding:"omitempty,oneof=draft published"`
	}
	if !bindJSONForm(ctx, &form) {
		return
	}
	status := models.PostDraft
	if form.Status != "" {
		status = models.PostStatus(form.Status)
	}
	post := models.Post{
		Title:    form.Title,
		Slug:     form.Slug,
		Body:     form.Body,
		AuthorID: middlewares.ViewerFrom(ctx).UserID,
		Status:   status,
		Publish:  c.Clock.Now(),
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	if err := c.Repo.CreatePost(ctx.Request.Context(), &post); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// PublishPost marks a post published as of now.
func (c *Controller) PublishPost(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	post := models.Post{Status: models.PostPublished, Publish: c.Clock.Now()}
	post.ID = id
	if err := c.Repo.UpdatePostStatus(ctx.Request.Context(), &post); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Post published."})
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
