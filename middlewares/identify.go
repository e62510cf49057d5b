package middlewares

import (
	"strings"

	"github.com/Kariqs/vkusnyashka/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"
)

const (
	// TokenCookie holds the session JWT.
	TokenCookie = "token"
	viewerKey   = "viewer"
)

// Identify resolves the caller from the token cookie or a Bearer header. A
// missing, expired or forged token leaves the caller anonymous.
func Identify(secret string, clk clock.Clock) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		viewer := services.Viewer{}
		if raw := tokenFrom(ctx); raw != "" {
			v, err := ParseToken(raw, secret, clk)
			if err != nil {
				log.WithError(err).Debug("Ignoring invalid session token")
			} else {
				viewer = v
			}
		}
		ctx.Set(viewerKey, viewer)
		ctx.Next()
	}
}

func tokenFrom(ctx *gin.Context) string {
	if header := ctx.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := ctx.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// ParseToken verifies an HS256 token and returns the viewer it names.
func ParseToken(raw, secret string, clk clock.Clock) (services.Viewer, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(clk.Now))
	if err != nil {
		return services.Viewer{}, err
	}

	id, _ := claims["user_id"].(float64)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return services.Viewer{UserID: uint(id), Username: username, Role: role}, nil
}

// ViewerFrom returns the viewer set by Identify, or the anonymous viewer.
func ViewerFrom(ctx *gin.Context) services.Viewer {
	if v, ok := ctx.Get(viewerKey); ok {
		if viewer, ok := v.(services.Viewer); ok {
			return viewer
		}
	}
	return services.Viewer{}
}
