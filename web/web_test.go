package web

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, p := range publicPages {
		assert.Contains(t, r.pages, p)
	}
	for _, p := range studioPages {
		assert.Contains(t, r.pages, "studio/"+p)
	}
}

func TestInstance_UnknownPagePanics(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Panics(t, func() { r.Instance("nope", nil) })
}

func TestInstance_RendersLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	data := map[string]any{
		"lang":    i18n.English,
		"langs":   i18n.Supported(),
		"t":       i18n.For(i18n.English),
		"path":    "/missing",
		"status":  404,
		"message": "gone",
	}
	err = r.Instance("error", data).Render(w)
	require.NoError(t, err)

	var body bytes.Buffer
	_, _ = io.Copy(&body, w.Result().Body)
	assert.Contains(t, body.String(), "gone")
	assert.Contains(t, body.String(), "/static/css/site.css")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	f, err := Static().Open("/site.css")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
