package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/database"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/users"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	dashboardPath = "/studio"
	invalidLogin  = "Invalid username or password."
)

// safeNext keeps post-login redirects inside the studio.
func safeNext(next string) string {
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return dashboardPath
	}
	if u.Path != dashboardPath && !strings.HasPrefix(u.Path, dashboardPath+"/") {
		return dashboardPath
	}
	if strings.HasPrefix(u.Path, "/studio/login") || strings.HasPrefix(u.Path, "/studio/logout") {
		return dashboardPath
	}
	return u.RequestURI()
}

// GET /studio/login
func LoginPage(c *gin.Context) {
	if middleware.CurrentVisitor(c).Authenticated() {
		c.Redirect(http.StatusFound, dashboardPath)
		return
	}
	view.Page(c, http.StatusOK, "studio/login", gin.H{
		"next": c.Query("next"),
	})
}

// POST /studio/login
func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	admin, err := users.Authenticate(database.DB, username, password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		logger.Get().Warn().Str("client_ip", c.ClientIP()).Msg("failed studio login")
		view.Page(c, http.StatusUnauthorized, "studio/login", gin.H{
			"error":    invalidLogin,
			"username": username,
			"next":     next,
		})
		return
	}
	if err != nil {
		view.ServerError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionAdminID, admin.ID)
	session.Set(middleware.SessionAdminName, admin.Username)
	if err := session.Save(); err != nil {
		view.ServerError(c, err)
		return
	}

	logger.Get().Info().Uint("admin_id", admin.ID).Msg("studio login")
	c.Redirect(http.StatusFound, safeNext(next))
}

// GET /studio/logout. The language preference survives logout.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionAdminID)
	session.Delete(middleware.SessionAdminName)
	if err := session.Save(); err != nil {
		logger.Get().Error().Err(err).Msg("save session on logout")
	}

	v := middleware.CurrentVisitor(c)
	middleware.SetVisitor(c, middleware.Visitor{Lang: v.Lang})
	c.Redirect(http.StatusFound, "/")
}
