package controllers

import (
	"net/http"

	"github.com/Kariqs/vkusnyashka/services"
	"github.com/gin-gonic/gin"
)

func (c *Controller) Home(ctx *gin.Context) {
	page, err := c.Shop.Home(c.request(ctx))
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "home.html", gin.H{
		"newArrivals":   page.NewArrivals,
		"promotions":    page.Promotions,
		"topCategories": page.TopCategories,
	})
}

// Catalog lists available products filtered by category, min_price and
// max_price.
func (c *Controller) Catalog(ctx *gin.Context) {
	q, err := services.ParseCatalogQuery(ctx.Query("category"), ctx.Query("min_price"), ctx.Query("max_price"))
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	page, err := c.Shop.Catalog(c.request(ctx), q)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "catalog.html", gin.H{
		"products":   page.Products,
		"categories": page.Categories,
		"filters": gin.H{
			"category":  ctx.Query("category"),
			"min_price": ctx.Query("min_price"),
			"max_price": ctx.Query("max_price"),
		},
	})
}

func (c *Controller) Search(ctx *gin.Context) {
	query := ctx.Query("query")
	products, err := c.Shop.Search(c.request(ctx), query)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "search.html", gin.H{"products": products, "query": query})
}

func (c *Controller) Promotions(ctx *gin.Context) {
	segments, err := c.Shop.Promotions(c.request(ctx))
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "promotions.html", gin.H{
		"past":   segments.Past,
		"active": segments.Active,
		"future": segments.Future,
	})
}
