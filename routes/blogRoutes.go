package routes

import (
	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/gin-gonic/gin"
)

func BlogRoutes(server *gin.Engine, c *controllers.Controller) {
	blog := server.Group("/myblog")
	{
		blog.GET("/", c.PostList)
		blog.GET("/:id", c.PostDetail)
	}
}
