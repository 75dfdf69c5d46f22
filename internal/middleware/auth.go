package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/service"
)

const sessionKey = "session"

// RequireSession loads the active session record and aborts with 401 when
// nobody is signed in.
func RequireSession(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.RequireSession(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// AdminOnly gates catalog administration. Must run after RequireSession.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || session.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) *model.Session {
	v, _ := c.Get(sessionKey)
	session, _ := v.(*model.Session)
	return session
}
