package middleware

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// CleanText strips all markup from s, leaving plain text. Entities produced
// by the policy are decoded again; templates escape on output.
func CleanText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// CleanRichText keeps the safe formatting subset allowed in painting
// descriptions. The result is HTML, so it is applied when rendering.
func CleanRichText(s string) string {
	return ugcPolicy.Sanitize(s)
}

// SanitizeFormInput parses urlencoded and multipart POST bodies and reduces
// every text value to plain text. Fields named description_* are stored as
// typed and cleaned with CleanRichText on output; fields listed in skip
// (passwords) are left untouched.
func SanitizeFormInput(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skip))
	for _, f := range skip {
		skipped[f] = true
	}

	clean := func(vals map[string][]string) {
		for k, vs := range vals {
			if skipped[k] || strings.HasPrefix(k, "description_") {
				continue
			}
			for i, v := range vs {
				vs[i] = CleanText(v)
			}
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		var err error
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			err = c.Request.ParseMultipartForm(multipartMemory)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatus(http.StatusRequestEntityTooLarge)
				return
			}
			logger.Get().Warn().Err(err).Str("path", c.Request.URL.Path).Msg("malformed form body")
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		clean(c.Request.PostForm)
		clean(c.Request.Form)
		if mf := c.Request.MultipartForm; mf != nil {
			clean(mf.Value)
		}
		c.Next()
	}
}

