package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"":                             "/studio",
		"/studio":                      "/studio",
		"/studio/paintings":            "/studio/paintings",
		"/studio/paintings/edit/3?x=1": "/studio/paintings/edit/3?x=1",
		"/studio/login":                "/studio",
		"/studioevil":                  "/studio",
		"/gallery":                     "/studio",
		"https://evil.example/studio":  "/studio",
		"//evil.example/studio":        "/studio",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeNext(in), in)
	}
}
