package siteapi

import (
	"errors"
	"net/http"

	"github.com/rivnefurniture-lab/kurevin-art/database"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/inquiries"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var inquiriesReceived = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inquiries_received_total",
		Help: "Contact form submissions stored",
	},
	[]string{"linked"},
)

// GET /contact?painting={id}
func ContactPage(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang
	data := gin.H{}

	if id, ok := parseID(c.Query("painting")); ok {
		p, err := paintings.Get(database.DB, id)
		switch {
		case err == nil:
			card := view.NewCard(p, lang)
			data["painting"] = &card
		case !errors.Is(err, paintings.ErrNotFound):
			view.ServerError(c, err)
			return
		}
	}
	view.Page(c, http.StatusOK, "contact", data)
}

// POST /contact
func SubmitContact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		view.ServerError(c, err)
		return
	}

	msg, err := inquiries.Create(database.DB, form.Submission())
	if err != nil {
		view.ServerError(c, err)
		return
	}

	linked := "false"
	if msg.PaintingID != nil {
		linked = "true"
	}
	inquiriesReceived.WithLabelValues(linked).Inc()
	logger.Get().Info().Uint("message_id", msg.ID).Str("linked", linked).Msg("inquiry received")

	view.Flash(c, view.T(c, "message_sent"))
	c.Redirect(http.StatusFound, "/contact")
}
