package siteapi

import (
	"errors"
	"net/http"

	"github.com/rivnefurniture-lab/kurevin-art/database"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/site"
	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// GET /
func Home(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	list, err := paintings.Home(database.DB)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Page(c, http.StatusOK, "home", gin.H{
		"paintings": view.NewCards(list, lang),
	})
}

// GET /gallery?filter=all|available|sold
func Gallery(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang
	filter := paintings.ParseFilter(c.Query("filter"))

	list, err := paintings.Gallery(database.DB, filter)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Page(c, http.StatusOK, "gallery", gin.H{
		"filter":    string(filter),
		"paintings": view.NewCards(list, lang),
	})
}

// GET /painting/:id
func Painting(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	id, ok := parseID(c.Param("id"))
	if !ok {
		view.NotFound(c)
		return
	}
	p, err := paintings.Get(database.DB, id)
	if errors.Is(err, paintings.ErrNotFound) {
		view.NotFound(c)
		return
	}
	if err != nil {
		view.ServerError(c, err)
		return
	}

	related, err := paintings.Related(database.DB, p.ID)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Page(c, http.StatusOK, "painting", gin.H{
		"painting":  view.NewCard(p, lang),
		"paintings": view.NewCards(related, lang),
	})
}

// GET /about
func About(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	text, ok, err := site.Value(database.DB, site.AboutText, lang)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	if !ok {
		text = i18n.For(lang).T("about_text")
	}
	view.Page(c, http.StatusOK, "about", gin.H{
		"paragraphs": paragraphs(text),
	})
}

// GET /set-lang/:code
func SetLang(c *gin.Context) {
	if lang, ok := i18n.Parse(c.Param("code")); ok {
		session := sessions.Default(c)
		session.Set(middleware.SessionLang, lang.String())
		if err := session.Save(); err != nil {
			logger.Get().Error().Err(err).Msg("save language")
		}
	}
	c.Redirect(http.StatusFound, backTo(c.Request.Referer()))
}

