package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Zaara786/plush-palate/middlewares"
	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/webmsg"
	"github.com/Zaara786/plush-palate/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth  *services.AuthService
	Pages *PageController
	TTL   time.Duration
}

func NewAuthController(auth *services.AuthService, pages *PageController, ttl time.Duration) *AuthController {
	return &AuthController{Auth: auth, Pages: pages, TTL: ttl}
}

// POST / with form marker "login"
func (a *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, _, err := a.Auth.Login(username, password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			// same message for unknown user and wrong password
			a.Pages.AdminLogin(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		a.Pages.ServerError(c, err)
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, int(a.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, webmsg.DashboardPath("", ""))
}

// GET /?logout=1
func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middlewares.SessionCookie); err == nil {
		a.Auth.Logout(token)
	}
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, webmsg.LoginPath(webmsg.LoggedOut))
}
