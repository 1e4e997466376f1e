package middleware

import (
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// RequireOnboarded gates social features behind schedule confirmation. The
// flag is read from the database rather than the JWT so finishing onboarding
// takes effect without re-login.
func RequireOnboarded(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}
		if !user.Onboarded {
			response.AbortFail(c, http.StatusForbidden, response.ErrNotOnboarded)
			return
		}

		c.Next()
	}
}
