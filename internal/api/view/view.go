package view

import (
	"fmt"
	"net/http"

	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Contact is the artist's public contact block shown in every page footer.
type Contact struct {
	Email    string
	Phone    string
	Telegram string
}

const contactKey = "contact"

// SiteInfo makes the contact block available to Page.
func SiteInfo(ct Contact) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contactKey, ct)
		c.Next()
	}
}

// Page renders a named page with the values every layout needs: language,
// phrase table, visitor, contact block, pending flash messages and the
// current path.
func Page(c *gin.Context, status int, name string, data gin.H) {
	v := middleware.CurrentVisitor(c)
	if data == nil {
		data = gin.H{}
	}
	data["lang"] = v.Lang
	data["langs"] = i18n.Supported()
	data["t"] = i18n.For(v.Lang)
	data["visitor"] = v
	data["path"] = c.Request.URL.Path
	if ct, ok := c.Get(contactKey); ok {
		data[contactKey] = ct
	}
	data["flashes"] = takeFlashes(c)
	c.HTML(status, name, data)
}

// Flash queues a one-time message for the next rendered page.
func Flash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	if err := s.Save(); err != nil {
		logger.Get().Error().Err(err).Msg("save flash")
	}
}

func takeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		logger.Get().Error().Err(err).Msg("clear flashes")
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		out = append(out, fmt.Sprint(f))
	}
	return out
}

// T returns the phrase for key in the visitor's language.
func T(c *gin.Context, key string) string {
	return i18n.For(middleware.CurrentVisitor(c).Lang).T(key)
}

func NotFound(c *gin.Context) {
	Page(c, http.StatusNotFound, "error", gin.H{
		"status":  http.StatusNotFound,
		"message": T(c, "not_found"),
	})
}

// ServerError logs err against the request and renders the generic error
// page.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	log := logger.WithRequestID(c.GetString("request_id"))
	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	Page(c, http.StatusInternalServerError, "error", gin.H{
		"status":  http.StatusInternalServerError,
		"message": T(c, "server_error"),
	})
}
