package imagestore

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "paintings")
	s, err := New(dir)
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	name, err := s.Save(fileHeader(t, "Odessa Peonies.webp", []byte("RIFF....WEBP")), now)
	require.NoError(t, err)
	assert.Equal(t, "Odessa_Peonies_1700000000.webp", name)
	assert.True(t, s.Exists(name))

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF....WEBP"), got)
}

func TestSave_RejectsExtension(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "payload.exe", []byte("MZ")), time.Now())
	assert.ErrorIs(t, err, media.ErrExtensionNotAllowed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
