package router

import (
	"html/template"
	"time"

	"github.com/damian-kos/portfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup configures the gin engine: session middleware, templates, static
// assets and the route table.
func Setup(api *handler.API, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))
	r.Use(api.LoadCurrentUser())

	r.SetFuncMap(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	})
	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}
	r.LoadHTMLGlob(templateGlob)

	r.Static("/static", "./web/static")

	r.GET("/", api.ShowBlogPosts)
	r.GET("/tech_posts", api.ShowTechPosts)
	r.GET("/about", api.ShowAbout)

	r.GET("/register", api.ShowRegister)
	r.POST("/register", api.Register)
	r.GET("/login", api.ShowLogin)
	r.POST("/login", api.Login)
	r.GET("/logout", api.AuthRequired(), api.Logout)

	r.GET("/post/:id", api.ShowPostDetail)
	r.POST("/post/:id", api.AuthRequired(), api.AddComment)

	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	// Mutating post routes are administrator only.
	admin := r.Group("")
	admin.Use(api.AdminRequired())
	{
		admin.GET("/new-post", api.ShowNewPost)
		admin.POST("/new-post", api.CreatePost)
		admin.GET("/edit-post/:id", api.ShowEditPost)
		admin.POST("/edit-post/:id", api.UpdatePost)
		admin.GET("/delete/:id", api.DeletePost)
	}

	r.NoRoute(api.NotFound)

	return r
}
