package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/database"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/inquiries"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"

	"github.com/gin-gonic/gin"
)

const dashboardRecent = 5

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GET /studio
func Dashboard(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	stats, err := paintings.Count(database.DB)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	unread, err := inquiries.UnreadCount(database.DB)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	recent, err := inquiries.Recent(database.DB, dashboardRecent)
	if err != nil {
		view.ServerError(c, err)
		return
	}

	view.Page(c, http.StatusOK, "studio/dashboard", gin.H{
		"stats":    stats,
		"unread":   unread,
		"messages": toMessageRows(recent, lang),
	})
}

// GET /studio/messages
func ListMessages(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	all, err := inquiries.Recent(database.DB, 0)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Page(c, http.StatusOK, "studio/messages", gin.H{
		"messages": toMessageRows(all, lang),
	})
}

// POST /studio/messages/mark-read/:id -> {"success": bool}
func MarkMessageRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false})
		return
	}
	err := inquiries.MarkRead(database.DB, id)
	if errors.Is(err, inquiries.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /studio/messages/delete/:id
func DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		view.NotFound(c)
		return
	}
	err := inquiries.Delete(database.DB, id)
	if errors.Is(err, inquiries.ErrNotFound) {
		view.NotFound(c)
		return
	}
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Flash(c, "Message deleted.")
	c.Redirect(http.StatusFound, "/studio/messages")
}
