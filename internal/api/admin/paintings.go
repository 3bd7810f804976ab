package admin

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/database"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/media"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/imagestore"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-gonic/gin"
)

const paintingsPath = "/studio/paintings"

// GET /studio/paintings
func ListPaintings(c *gin.Context) {
	lang := middleware.CurrentVisitor(c).Lang

	all, err := paintings.All(database.DB)
	if err != nil {
		view.ServerError(c, err)
		return
	}
	view.Page(c, http.StatusOK, "studio/paintings", gin.H{
		"paintings": view.NewCards(all, lang),
	})
}

// GET /studio/paintings/add
func NewPainting(c *gin.Context) {
	renderForm(c, http.StatusOK, newPaintingForm(), "")
}

// POST /studio/paintings/add
func CreatePainting(images *imagestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := postedValues(c)
		if err != nil {
			view.ServerError(c, err)
			return
		}

		in, err := paintings.ParseInput(values)
		if err == nil {
			err = in.ValidateCreate()
		}
		if err != nil {
			renderInputError(c, err, formFromValues(0, values, ""))
			return
		}

		if in.Image, err = saveUpload(c, images); err != nil {
			view.ServerError(c, err)
			return
		}

		p, err := paintings.Create(database.DB, in)
		if err != nil {
			view.ServerError(c, err)
			return
		}
		logger.Get().Info().Uint("painting_id", p.ID).Msg("painting created")
		view.Flash(c, "Painting added.")
		c.Redirect(http.StatusFound, paintingsPath)
	}
}

// GET /studio/paintings/edit/:id
func EditPainting(c *gin.Context) {
	p, ok := loadPainting(c)
	if !ok {
		return
	}
	renderForm(c, http.StatusOK, formFromPainting(p), "")
}

// POST /studio/paintings/edit/:id
func UpdatePainting(images *imagestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := loadPainting(c)
		if !ok {
			return
		}
		values, err := postedValues(c)
		if err != nil {
			view.ServerError(c, err)
			return
		}

		in, err := paintings.ParseInput(values)
		if err != nil {
			renderInputError(c, err, formFromValues(current.ID, values, view.ImageURL(current.Image)))
			return
		}

		if in.Image, err = saveUpload(c, images); err != nil {
			view.ServerError(c, err)
			return
		}

		_, err = paintings.Update(database.DB, current.ID, in)
		if errors.Is(err, paintings.ErrNotFound) {
			view.NotFound(c)
			return
		}
		if err != nil {
			view.ServerError(c, err)
			return
		}
		logger.Get().Info().Uint("painting_id", current.ID).Msg("painting updated")
		view.Flash(c, "Painting saved.")
		c.Redirect(http.StatusFound, paintingsPath)
	}
}

// POST /studio/paintings/delete/:id
func DeletePainting(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		view.NotFound(c)
		return
	}
	err := paintings.Delete(database.DB, id)
	if errors.Is(err, paintings.ErrNotFound) {
		view.NotFound(c)
		return
	}
	if err != nil {
		view.ServerError(c, err)
		return
	}
	logger.Get().Info().Uint("painting_id", id).Msg("painting deleted")
	view.Flash(c, "Painting deleted.")
	c.Redirect(http.StatusFound, paintingsPath)
}

func loadPainting(c *gin.Context) (*paintings.Painting, bool) {
	id, ok := parseID(c)
	if !ok {
		view.NotFound(c)
		return nil, false
	}
	p, err := paintings.Get(database.DB, id)
	if errors.Is(err, paintings.ErrNotFound) {
		view.NotFound(c)
		return nil, false
	}
	if err != nil {
		view.ServerError(c, err)
		return nil, false
	}
	return p, true
}

func formAction(f PaintingForm) string {
	if f.ID == 0 {
		return paintingsPath + "/add"
	}
	return fmt.Sprintf("%s/edit/%d", paintingsPath, f.ID)
}

func renderForm(c *gin.Context, status int, f PaintingForm, msg string) {
	view.Page(c, status, "studio/painting_form", gin.H{
		"form":   f,
		"action": formAction(f),
		"error":  msg,
	})
}

// renderInputError shows the form again with 400 for rejected input. Other
// errors are server errors.
func renderInputError(c *gin.Context, err error, f PaintingForm) {
	var fe *paintings.FormError
	switch {
	case errors.As(err, &fe):
		renderForm(c, http.StatusBadRequest, f, fmt.Sprintf("Invalid %s %q: %s.", fe.Field, fe.Value, fe.Reason))
	case errors.Is(err, paintings.ErrTitleRequired):
		renderForm(c, http.StatusBadRequest, f, "A title is required in every language.")
	default:
		view.ServerError(c, err)
	}
}

// postedValues returns the parsed body of a urlencoded or multipart form.
func postedValues(c *gin.Context) (url.Values, error) {
	err := c.Request.ParseMultipartForm(32 << 20)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return c.Request.PostForm, nil
}

// saveUpload stores the "image" file if one was sent. A missing file or a
// disallowed extension yields nil so the painting keeps its image unchanged.
func saveUpload(c *gin.Context, images *imagestore.Store) (*string, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Filename == "" {
		return nil, nil
	}

	name, err := images.Save(fh, time.Now())
	if errors.Is(err, media.ErrExtensionNotAllowed) {
		logger.Get().Warn().Str("file", fh.Filename).Msg("upload rejected: extension not allowed")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &name, nil
}
