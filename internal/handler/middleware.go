package handler

import (
	"github.com/damian-kos/portfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserIDKey = "user_id"

	currentUserContextKey = "__current_user"
)

// LoadCurrentUser resolves the session to a request-scoped identity so
// handlers read it from the gin context instead of global state. An
// invalid or stale session is treated as anonymous.
func (a *API) LoadCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(sessionUserIDKey)
		if raw == nil {
			c.Next()
			return
		}

		id, ok := raw.(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := a.users.Get(id)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *db.User {
	if raw, exists := c.Get(currentUserContextKey); exists {
		if user, ok := raw.(*db.User); ok {
			return user
		}
	}
	return nil
}

// AuthRequired rejects anonymous requests with a forbidden page.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			a.renderForbidden(c)
			return
		}
		c.Next()
	}
}

// AdminRequired rejects everyone except the administrator. All mutating
// post routes go through this guard.
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			a.renderForbidden(c)
			return
		}
		c.Next()
	}
}

// signIn stores the user in the session, establishing the identity for
// the rest of the browsing session.
func signIn(c *gin.Context, user *db.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	return session.Save()
}

// signOut clears the session.
func signOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
