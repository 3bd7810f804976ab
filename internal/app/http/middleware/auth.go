package middleware

import (
	"net/http"
	"net/url"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys.
const (
	SessionLang      = "lang"
	SessionAdminID   = "admin_id"
	SessionAdminName = "admin_name"
)

const visitorKey = "visitor"

// Visitor is the per-request view of the session: the active language and
// the signed-in admin, if any.
type Visitor struct {
	Lang      i18n.Lang
	AdminID   uint
	AdminName string
}

func (v Visitor) Authenticated() bool {
	return v.AdminID != 0
}

// LoadVisitor resolves the session into a Visitor and stores it on the
// context. Handlers read it with CurrentVisitor.
func LoadVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		v := Visitor{Lang: i18n.Resolve(session.Get(SessionLang))}
		if id, ok := session.Get(SessionAdminID).(uint); ok && id != 0 {
			v.AdminID = id
			v.AdminName, _ = session.Get(SessionAdminName).(string)
		}
		c.Set(visitorKey, v)
		c.Next()
	}
}

// CurrentVisitor returns the visitor loaded for this request. Without
// LoadVisitor in the chain it is an anonymous visitor in the default
// language.
func CurrentVisitor(c *gin.Context) Visitor {
	if v, ok := c.Get(visitorKey); ok {
		if visitor, ok := v.(Visitor); ok {
			return visitor
		}
	}
	return Visitor{Lang: i18n.Default}
}

// SetVisitor replaces the request's visitor after a login or logout.
func SetVisitor(c *gin.Context, v Visitor) {
	c.Set(visitorKey, v)
}

// AuthRequired sends anonymous visitors to the studio login page, carrying
// the requested path in ?next=.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentVisitor(c).Authenticated() {
			c.Next()
			return
		}
		logger.Get().Debug().
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("studio access without session")

		target := "/studio/login?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}
