package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/damian-kos/portfolio/internal/forms"
	"github.com/damian-kos/portfolio/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowNewPost renders an empty post form.
func (a *API) ShowNewPost(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "make_post.html", gin.H{
		"title":   "New Post",
		"heading": "New Post",
		"form":    forms.PostForm{},
		"action":  "/new-post",
	})
}

// CreatePost validates the post form and persists a post owned by the
// current identity, with the creation date captured now.
func (a *API) CreatePost(c *gin.Context) {
	var form forms.PostForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderHTML(c, http.StatusBadRequest, "make_post.html", gin.H{
			"title":   "New Post",
			"heading": "New Post",
			"form":    form,
			"errors":  errs,
			"action":  "/new-post",
		})
		return
	}

	if _, err := a.posts.Create(postInput(form), currentUserID(c)); err != nil {
		a.renderPostFormError(c, "New Post", "/new-post", form, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowEditPost pre-populates the post form from an existing post.
func (a *API) ShowEditPost(c *gin.Context) {
	post, ok := a.lookupPost(c)
	if !ok {
		return
	}

	sortPosition := post.SortPosition
	form := forms.PostForm{
		Title:        post.Title,
		Subtitle:     post.Subtitle,
		ImageURL:     post.ImageURL,
		Body:         post.Body,
		Category:     post.Category,
		SortPosition: &sortPosition,
	}

	a.renderHTML(c, http.StatusOK, "make_post.html", gin.H{
		"title":   "Edit Post",
		"heading": "Edit Post",
		"form":    form,
		"action":  fmt.Sprintf("/edit-post/%d", post.ID),
	})
}

// UpdatePost applies the validated form to an existing post and redirects
// to its detail page. The author stays who wrote it.
func (a *API) UpdatePost(c *gin.Context) {
	post, ok := a.lookupPost(c)
	if !ok {
		return
	}

	action := fmt.Sprintf("/edit-post/%d", post.ID)

	var form forms.PostForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderHTML(c, http.StatusBadRequest, "make_post.html", gin.H{
			"title":   "Edit Post",
			"heading": "Edit Post",
			"form":    form,
			"errors":  errs,
			"action":  action,
		})
		return
	}

	if _, err := a.posts.Update(post.ID, postInput(form)); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			a.renderNotFound(c)
			return
		}
		a.renderPostFormError(c, "Edit Post", action, form, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// DeletePost removes a post and returns to the home page.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			a.renderNotFound(c)
			return
		}
		a.logger.Error("post delete failed", zap.Uint("post_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "delete failed")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (a *API) renderPostFormError(c *gin.Context, title, action string, form forms.PostForm, err error) {
	if errors.Is(err, service.ErrTitleTaken) {
		a.renderHTML(c, http.StatusBadRequest, "make_post.html", gin.H{
			"title":   title,
			"heading": title,
			"form":    form,
			"errors":  forms.FieldErrors{"Title": "A post with this title already exists."},
			"action":  action,
		})
		return
	}

	a.logger.Error("post save failed", zap.Error(err))
	a.renderHTML(c, http.StatusInternalServerError, "make_post.html", gin.H{
		"title":   title,
		"heading": title,
		"form":    form,
		"errors":  forms.FieldErrors{forms.FormKey: "The post could not be saved."},
		"action":  action,
	})
}

func postInput(form forms.PostForm) service.PostInput {
	sortPosition := 0
	if form.SortPosition != nil {
		sortPosition = *form.SortPosition
	}

	return service.PostInput{
		Title:        form.Title,
		Subtitle:     form.Subtitle,
		Body:         form.Body,
		ImageURL:     form.ImageURL,
		Category:     form.Category,
		SortPosition: sortPosition,
	}
}
