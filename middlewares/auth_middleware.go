package middlewares

import (
	"gin-wardrobe/constants"
	"gin-wardrobe/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token on each request to a username and
// stores it in the gin context under "username". Requests without a valid
// token never reach a handler. A header without a scheme/token pair is
// rejected like any other invalid token.
func AuthMiddleware(tokenService services.ITokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrAuthHeaderMissing})
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrInvalidToken})
			return
		}

		username, err := tokenService.Validate(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrInvalidToken})
			return
		}

		ctx.Set("username", username)

		ctx.Next()
	}
}
