package routes

import (
	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/gin-gonic/gin"
)

func AccountRoutes(server *gin.Engine, c *controllers.Controller) {
	accounts := server.Group("/accounts")
	{
		accounts.GET("/signup/", c.SignupForm)
		accounts.POST("/signup/", c.Signup)
		accounts.GET("/login/", c.LoginForm)
		accounts.POST("/login/", c.Login)
		accounts.POST("/logout/", c.Logout)
		accounts.GET("/activate/:token", c.ActivateAccount)
		accounts.GET("/password-reset/", c.PasswordResetForm)
		accounts.POST("/password-reset/", c.SendPasswordResetLink)
		accounts.GET("/password-reset/:token", c.ResetPasswordForm)
		accounts.POST("/password-reset/:token", c.ResetPassword)
	}
}
