package routes

import (
	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, c *controllers.Controller) {
	admin := server.Group("/admin", middlewares.RequireAdmin())
	{
		admin.GET("/categories", c.ListCategories)
		admin.POST("/categories", c.CreateCategory)
		admin.DELETE("/categories/:id", c.DeleteCategory)

		admin.GET("/stores", c.ListStores)
		admin.POST("/stores", c.CreateStore)

		admin.GET("/promotions", c.ListPromotions)
		admin.POST("/promotions", c.CreatePromotion)
		admin.DELETE("/promotions/:id", c.DeletePromotion)

		admin.GET("/posts", c.ListPosts)
		admin.POST("/posts", c.CreatePost)
		admin.PATCH("/posts/:id/publish", c.PublishPost)

		admin.GET("/orders", c.GetOrders)
		admin.PATCH("/orders/:orderId", c.UpdateOrderStatus)
	}
}
