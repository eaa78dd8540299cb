package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// resolved user under utils.UserKey.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			utils.AbortWithError(c, utils.AuthError("No token provided", nil))
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		c.Set(utils.UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(utils.UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
