// Package forms declares the input schemas accepted by the HTTP surface
// and turns binding failures into field-level error annotations the
// templates can render next to each input.
package forms

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RegisterForm is the registration input shape.
type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginForm is the login input shape.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// PostForm is the create/edit input shape for posts. SortPosition is a
// pointer so that an explicit 0 still satisfies required.
type PostForm struct {
	Title        string `form:"title" binding:"required"`
	Subtitle     string `form:"subtitle" binding:"required"`
	ImageURL     string `form:"img_url" binding:"required,url"`
	Body         string `form:"body" binding:"required"`
	Category     string `form:"category" binding:"required,oneof=blog tech"`
	SortPosition *int   `form:"sort_position" binding:"required"`
}

// SortValue renders the sort position for form re-display; empty when the
// field was never supplied.
func (f PostForm) SortValue() string {
	if f.SortPosition == nil {
		return ""
	}
	return strconv.Itoa(*f.SortPosition)
}

// CommentForm is the comment input shape.
type CommentForm struct {
	Body string `form:"body" binding:"required"`
}

// ContactForm is the contact page input shape.
type ContactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// FieldErrors maps struct field names to human readable messages.
type FieldErrors map[string]string

// Get returns the message for a field, or the empty string.
func (e FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Has reports whether a field failed validation.
func (e FieldErrors) Has(field string) bool {
	return e.Get(field) != ""
}

// FormKey collects errors that cannot be attributed to a single field,
// such as type mismatches during binding.
const FormKey = "Form"

// Bind populates form from the request and returns nil on success, or the
// per-field errors to re-render the page with. No store mutation may
// happen once Bind reports errors.
func Bind(c *gin.Context, form interface{}) FieldErrors {
	if err := c.ShouldBind(form); err != nil {
		return fieldErrorsFrom(err)
	}
	return nil
}

func fieldErrorsFrom(err error) FieldErrors {
	out := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out[FormKey] = "Submitted values could not be read. Please check the form and try again."
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "oneof":
		return "Select a valid choice."
	default:
		return "This value is invalid."
	}
}
