// Package controllers holds the gin handlers for the shop, the blog, accounts
// and the back office.
package controllers

import (
	"math/rand"
	"time"

	"github.com/Kariqs/vkusnyashka/initializers"
	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/Kariqs/vkusnyashka/services"
	"github.com/Kariqs/vkusnyashka/utils"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
)

// Mailer delivers a templated email.
type Mailer interface {
	SendEmail(emailTo string, emailSubject string, data utils.EmailData, templatePath string) error
}

// Controller carries the dependencies shared by every handler.
type Controller struct {
	Shop     *services.Shop
	Blog     *services.Blog
	Repo     *repository.Repository
	Render   Renderer
	Mailer   Mailer
	Clock    clock.Clock
	Location *time.Location
	Config   initializers.Config
	// NewPicker returns the random source for one request.
	NewPicker func() services.Picker
}

// New wires the services onto repo. Request times are read from clk and moved
// into loc, which decides the calendar date a request falls on.
func New(repo *repository.Repository, images services.ImageStore, render Renderer, mailer Mailer, clk clock.Clock, loc *time.Location, cfg initializers.Config) *Controller {
	return &Controller{
		Shop:     services.NewShop(repo, images),
		Blog:     services.NewBlog(repo),
		Repo:     repo,
		Render:   render,
		Mailer:   mailer,
		Clock:    clk,
		Location: loc,
		Config:   cfg,
		NewPicker: func() services.Picker {
			return rand.New(rand.NewSource(clk.Now().UnixNano()))
		},
	}
}

// request snapshots the caller, the clock and a random source for one request.
func (c *Controller) request(ctx *gin.Context) services.Request {
	req := services.NewRequest(ctx.Request.Context(), middlewares.ViewerFrom(ctx), c.Clock, c.NewPicker())
	if c.Location != nil {
		req.Now = req.Now.In(c.Location)
	}
	return req
}
