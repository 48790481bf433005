package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
	"github.com/oksasatya/go-restaurant-api/pkg/response"
)

const CtxUserIDKey = "userID"

// RequireSession gates protected routes. It validates the session cookie and
// checks that the token's session id still resolves to a live session; on
// failure the request is answered here and never reaches the handler, so a
// denied request causes no store mutation.
//
// The rejection is a 400 with a flat error payload, which is what this API's
// clients already expect.
func RequireSession(sessions helpers.SessionStore, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusBadRequest, "Please login first")
			c.Abort()
			return
		}
		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Please login first")
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || sess == nil || sess.ID != claims.SessionID {
			response.Error(c, http.StatusBadRequest, "Please login first")
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, sess.UserID)
		c.Set("userEmail", sess.Email)
		c.Next()
	}
}
