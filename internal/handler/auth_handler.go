package handler

import (
	"errors"
	"net/http"

	"github.com/damian-kos/portfolio/internal/forms"
	"github.com/damian-kos/portfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowRegister renders the registration form.
func (a *API) ShowRegister(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "register.html", gin.H{
		"title": "Register",
		"form":  forms.RegisterForm{},
	})
}

// Register validates the registration form and creates the account. A
// duplicate email leaves the store untouched and sends the visitor to the
// login page with a flash message.
func (a *API) Register(c *gin.Context) {
	var form forms.RegisterForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderHTML(c, http.StatusBadRequest, "register.html", gin.H{
			"title":  "Register",
			"form":   form,
			"errors": errs,
		})
		return
	}

	user, err := a.users.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			session := sessions.Default(c)
			session.AddFlash("Email is already used")
			session.Save()
			c.Redirect(http.StatusFound, "/login")
			return
		}
		a.logger.Error("registration failed", zap.Error(err))
		a.renderHTML(c, http.StatusInternalServerError, "register.html", gin.H{
			"title": "Register",
			"form":  form,
			"error": "Registration failed, please try again.",
		})
		return
	}

	if err := signIn(c, user); err != nil {
		a.logger.Error("session save failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowLogin renders the login form along with any pending flash message.
func (a *API) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()

	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title":   "Log In",
		"form":    forms.LoginForm{},
		"flashes": flashes,
	})
}

// Login validates credentials and starts a session. Unknown email and
// wrong password both re-render with the same inline message.
func (a *API) Login(c *gin.Context) {
	var form forms.LoginForm
	if errs := forms.Bind(c, &form); errs != nil {
		a.renderHTML(c, http.StatusBadRequest, "login.html", gin.H{
			"title":  "Log In",
			"form":   form,
			"errors": errs,
		})
		return
	}

	user, err := a.users.Authenticate(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
				"title": "Log In",
				"form":  form,
				"error": "Invalid email or password provided",
			})
			return
		}
		a.logger.Error("login failed", zap.Error(err))
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Log In",
			"form":  form,
			"error": "Login failed, please try again.",
		})
		return
	}

	if err := signIn(c, user); err != nil {
		a.logger.Error("session save failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout ends the session. The route sits behind AuthRequired, so an
// anonymous request never reaches this handler.
func (a *API) Logout(c *gin.Context) {
	if err := signOut(c); err != nil {
		a.logger.Error("session clear failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}
