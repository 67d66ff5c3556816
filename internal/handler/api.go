package handler

import (
	"net/http"
	"time"

	"github.com/damian-kos/portfolio/internal/forms"
	"github.com/damian-kos/portfolio/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
	mail     *service.MailService
	logger   *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, mail *service.MailService, logger *zap.Logger) *API {
	return &API{
		users:    service.NewUserService(gdb),
		posts:    service.NewPostService(gdb),
		comments: service.NewCommentService(gdb),
		mail:     mail,
		logger:   logger,
	}
}

// renderHTML attaches the request identity and footer year to every
// template payload.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["currentUser"]; !exists {
		payload["currentUser"] = CurrentUser(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	if _, exists := payload["errors"]; !exists {
		payload["errors"] = forms.FieldErrors{}
	}

	c.HTML(status, template, payload)
}

// renderNotFound renders the shared 404 page.
func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{"title": "Page Not Found"})
	c.Abort()
}

// NotFound renders the 404 page for unknown routes.
func (a *API) NotFound(c *gin.Context) {
	a.renderNotFound(c)
}

// renderForbidden renders the shared 403 page.
func (a *API) renderForbidden(c *gin.Context) {
	a.renderHTML(c, http.StatusForbidden, "forbidden.html", gin.H{"title": "Forbidden"})
	c.Abort()
}

// currentUserID returns the authenticated user's id, or 0 for anonymous.
func currentUserID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
