package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	for _, name := range []string{"a.png", "a.JPG", "b.jpeg", "c.gif", "d.WebP", "x.y.png"} {
		assert.True(t, Allowed(name), name)
	}
	for _, name := range []string{"a.exe", "png", "a.png.exe", "", "a."} {
		assert.False(t, Allowed(name), name)
	}
}

func TestSafeName(t *testing.T) {
	cases := map[string]string{
		"My cool movie.mov":     "My_cool_movie.mov",
		"../../../etc/passwd":   "etc_passwd",
		"Café crème.jpg":        "Cafe_creme.jpg",
		"Море":                  "",
		"  spaced   out  ":      "spaced_out",
		"._hidden_.":            "hidden",
		`dir\sub\file name.png`: "dir_sub_file_name.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, SafeName(in), in)
	}
}

func TestStoredName(t *testing.T) {
	now := time.Unix(1700000000, 0)

	got, err := StoredName("Coast of the Black Sea.WEBP", now)
	require.NoError(t, err)
	assert.Equal(t, "Coast_of_the_Black_Sea_1700000000.WEBP", got)

	got, err = StoredName("Photo.JPG", now)
	require.NoError(t, err)
	assert.Equal(t, "Photo_1700000000.JPG", got)
	assert.Equal(t, "image/jpeg", ContentType(got))

	got, err = StoredName("Море.jpg", now)
	require.NoError(t, err)
	assert.Equal(t, "painting_1700000000.jpg", got)

	_, err = StoredName("virus.exe", now)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType("a.JPEG"))
	assert.Equal(t, "image/webp", ContentType("a.webp"))
	assert.Equal(t, "application/octet-stream", ContentType("a.bin"))
}
