package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Vkusnyashka. The following are the endpoints of this site:

SHOP
- GET "/shop/" - Home: new arrivals, active promotions, top categories
- GET "/shop/catalog" - Available products (category, min_price, max_price)
- GET "/shop/search" - Search products by name or description (query)
- GET "/shop/promotions" - Past, active and future promotions
- GET "/shop/product/:id" - Product detail
- POST "/shop/cart/add/:id" - Add or remove a product from the cart
- GET "/shop/cart" - Cart
- GET "/shop/orders" - Your orders
- GET|POST "/shop/product/new" - Create a product
- GET|POST "/shop/product/:id/edit" - Edit a product
- GET|POST "/shop/product/:id/delete" - Delete a product

BLOG
- GET "/myblog/" - Published posts
- GET "/myblog/:id" - Post

ACCOUNTS
- GET|POST "/accounts/signup/" - Create account
- GET|POST "/accounts/login/" - Log in
- POST "/accounts/logout/" - Log out
- GET "/accounts/activate/:token" - Activate account
- POST "/accounts/password-reset/" - Request password reset
- POST "/accounts/password-reset/:token" - Reset password

ADMIN
- "/admin/categories", "/admin/stores", "/admin/promotions", "/admin/posts", "/admin/orders"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
