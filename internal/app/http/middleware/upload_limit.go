package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartMemory is how much of a multipart body is kept in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

// LimitBody rejects bodies larger than max before any handler runs. Declared
// lengths are checked up front; chunked bodies are cut off while reading.
func LimitBody(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}
