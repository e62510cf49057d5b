package middlewares

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// LoginURL is where anonymous callers are sent, with the page they wanted in
// "next".
func LoginURL(next string) string {
	return "/accounts/login/?next=" + url.QueryEscape(next)
}

func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ViewerFrom(ctx).Authenticated() {
			ctx.Redirect(http.StatusFound, LoginURL(ctx.Request.URL.RequestURI()))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
