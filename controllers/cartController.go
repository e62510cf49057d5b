package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ToggleCart adds the product to the cart, or removes it when already there.
// JSON callers get the new state; others are sent back to "next", the referring
// page or the cart.
func (c *Controller) ToggleCart(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	req := c.request(ctx)
	state, err := c.Shop.ToggleCart(req, id)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	log.WithFields(log.Fields{"user": req.Viewer.UserID, "product": id, "state": state}).Debug("Cart toggled")

	if wantsJSON(ctx) {
		ctx.JSON(http.StatusOK, gin.H{"status": state, "productId": id})
		return
	}
	for _, candidate := range []string{ctx.Query("next"), ctx.PostForm("next"), ctx.GetHeader("Referer")} {
		if target, ok := safeRedirect(ctx, candidate); ok {
			ctx.Redirect(http.StatusFound, target)
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/shop/cart")
}

func (c *Controller) GetCart(ctx *gin.Context) {
	page, err := c.Shop.Cart(c.request(ctx))
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "cart.html", gin.H{"items": page.Items, "total": page.Total})
}
