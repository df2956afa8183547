package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/pkg/helpers"
	"github.com/hireloop/hireloop-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token cookie and rejects revoked tokens.
// It sets userID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		revoked, err := auth.IsBlacklisted(c.Request.Context(), token)
		if err != nil {
			resp := response.Error[any](c, http.StatusInternalServerError, "token check failed", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		if revoked {
			resp := response.Error[any](c, http.StatusUnauthorized, "token revoked", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
