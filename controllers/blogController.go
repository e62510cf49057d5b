package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) PostList(ctx *gin.Context) {
	posts, err := c.Blog.Published(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "post_list.html", gin.H{"posts": posts})
}

func (c *Controller) PostDetail(ctx *gin.Context) {
	id, err := idParam(ctx, "id")
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	post, err := c.Blog.Post(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "post_detail.html", gin.H{"post": post})
}
