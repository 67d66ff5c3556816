package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/damian-kos/portfolio/internal/db"
	"github.com/damian-kos/portfolio/internal/forms"
	"github.com/damian-kos/portfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowBlogPosts renders the home page with every "blog" post, highest
// sort position first.
func (a *API) ShowBlogPosts(c *gin.Context) {
	a.renderPostList(c, db.CategoryBlog, "index.html", "Blog")
}

// ShowTechPosts renders the "tech" listing with the same ordering.
func (a *API) ShowTechPosts(c *gin.Context) {
	a.renderPostList(c, db.CategoryTech, "tech.html", "Tech Posts")
}

func (a *API) renderPostList(c *gin.Context, category, tmpl, title string) {
	posts, err := a.posts.ListByCategory(category)
	if err != nil {
		a.logger.Error("post listing failed",
			zap.String("category", category), zap.Error(err))
		a.renderHTML(c, http.StatusInternalServerError, tmpl, gin.H{
			"title": title,
			"error": "Posts are unavailable right now.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, tmpl, gin.H{
		"title": title,
		"posts": posts,
	})
}

// ShowPostDetail renders a single post with its rendered body and
// comments. A missing id is an explicit 404, never a blank page.
func (a *API) ShowPostDetail(c *gin.Context) {
	post, ok := a.lookupPost(c)
	if !ok {
		return
	}

	a.renderPostDetail(c, http.StatusOK, post, forms.CommentForm{}, nil)
}

// AddComment persists a comment from an authenticated reader and
// re-renders the post.
func (a *API) AddComment(c *gin.Context) {
	post, ok := a.lookupPost(c)
	if !ok {
		return
	}

	var form forms.CommentForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderPostDetail(c, http.StatusBadRequest, post, form, errs)
		return
	}

	if _, err := a.comments.Create(post.ID, currentUserID(c), form.Body); err != nil {
		a.logger.Error("comment create failed",
			zap.Uint("post_id", post.ID), zap.Error(err))
		a.renderPostDetail(c, http.StatusInternalServerError, post, form,
			forms.FieldErrors{forms.FormKey: "Your comment could not be saved."})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+c.Param("id"))
}

func (a *API) renderPostDetail(c *gin.Context, status int, post *db.Post, form forms.CommentForm, errs forms.FieldErrors) {
	comments, err := a.comments.ListForPost(post.ID)
	if err != nil {
		a.logger.Error("comment listing failed",
			zap.Uint("post_id", post.ID), zap.Error(err))
		comments = nil
	}

	rendered := make([]gin.H, 0, len(comments))
	for i := range comments {
		rendered = append(rendered, gin.H{
			"comment": comments[i],
			"body":    renderMarkdown(comments[i].Body),
		})
	}

	a.renderHTML(c, status, "post.html", gin.H{
		"title":       post.Title,
		"post":        post,
		"content":     renderMarkdown(post.Body),
		"comments":    rendered,
		"commentForm": form,
		"errors":      errs,
	})
}

func (a *API) lookupPost(c *gin.Context) (*db.Post, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return nil, false
	}

	post, err := a.posts.Get(id)
	if err != nil {
		a.renderNotFound(c)
		return nil, false
	}

	return post, true
}

// ShowAbout renders the static about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{"title": "About Me"})
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
		"form":  forms.ContactForm{},
	})
}

// SubmitContact validates the contact form and hands the message to the
// mail relay. Transport failures surface as a failure state on the page.
func (a *API) SubmitContact(c *gin.Context) {
	var form forms.ContactForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
			"title":  "Contact Me",
			"form":   form,
			"errors": errs,
		})
		return
	}

	reference, err := a.mail.Relay(service.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		a.renderHTML(c, http.StatusBadGateway, "contact.html", gin.H{
			"title":    "Contact Me",
			"form":     form,
			"sendFail": true,
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":     "Contact Me",
		"form":      forms.ContactForm{},
		"msgSent":   true,
		"reference": reference,
	})
}

func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
