package routes

import (
	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/gin-gonic/gin"
)

// Register mounts every route group on server. Identify runs first so every
// handler sees the caller.
func Register(server *gin.Engine, c *controllers.Controller) {
	server.Use(middlewares.Identify(c.Config.JWTSecret, c.Clock))
	server.NoRoute(c.NotFound)

	DefaultRoutes(server)
	BlogRoutes(server, c)
	ShopRoutes(server, c)
	AccountRoutes(server, c)
	AdminRoutes(server, c)
}
