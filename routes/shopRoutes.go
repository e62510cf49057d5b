package routes

import (
	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/gin-gonic/gin"
)

func ShopRoutes(server *gin.Engine, c *controllers.Controller) {
	shop := server.Group("/shop")
	{
		shop.GET("/", c.Home)
		shop.GET("/catalog", c.Catalog)
		shop.GET("/search", c.Search)
		shop.GET("/promotions", c.Promotions)
		shop.GET("/product/:id", c.ProductDetail)
	}

	member := shop.Group("", middlewares.RequireAuth())
	{
		member.POST("/cart/add/:id", c.ToggleCart)
		member.GET("/cart", c.GetCart)
		member.GET("/orders", c.GetMyOrders)
		member.POST("/product/:id/reviews", c.AddReview)
		member.POST("/product/:id/images", c.UploadProductImages)
		member.GET("/product/new", c.NewProductForm)
		member.POST("/product/new", c.CreateProduct)
		member.GET("/product/:id/edit", c.EditProductForm)
		member.POST("/product/:id/edit", c.UpdateProduct)
		member.GET("/product/:id/delete", c.DeleteProductForm)
		member.POST("/product/:id/delete", c.DeleteProduct)
	}
}
