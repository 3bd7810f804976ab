package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Lang
		ok   bool
	}{
		{"uk", Ukrainian, true},
		{"en", English, true},
		{"ru", Russian, true},
		{"fr", "", false},
		{"EN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Ukrainian, Resolve(nil))
	assert.Equal(t, Ukrainian, Resolve("fr"))
	assert.Equal(t, Ukrainian, Resolve(42))
	assert.Equal(t, English, Resolve("en"))
	assert.Equal(t, Russian, Resolve("ru"))
}

func TestLocalizedGet(t *testing.T) {
	m := Localized{Ukrainian: "Море", English: "Sea"}

	assert.Equal(t, "Море", m.Get(Ukrainian))
	assert.Equal(t, "Sea", m.Get(English))
	assert.Equal(t, "Sea", m.Get(Lang("fr")), "unsupported falls back to English")
	assert.Equal(t, "", m.Get(Russian), "blank supported language stays blank")
}

func TestPhraseTables_HaveSameKeys(t *testing.T) {
	base := For(Ukrainian)
	for _, l := range Supported() {
		p := For(l)
		assert.Len(t, p, len(base), l)
		for k := range base {
			assert.Contains(t, p, k, "%s missing %q", l, k)
		}
	}
}

func TestFor_UnsupportedUsesDefault(t *testing.T) {
	assert.Equal(t, For(Ukrainian)["nav_home"], For(Lang("de"))["nav_home"])
	assert.Equal(t, "missing_key", For(English).T("missing_key"))
}

func TestDefaultTechnique(t *testing.T) {
	assert.Equal(t, "Олія на полотні", DefaultTechnique(Ukrainian))
	assert.Equal(t, "Oil on canvas", DefaultTechnique(English))
	assert.Equal(t, "Масло на холсте", DefaultTechnique(Russian))
}

func TestFormatPrice_English(t *testing.T) {
	assert.Equal(t, "$1,800", FormatPrice(English, 1800))
	assert.Equal(t, "$950", FormatPrice(English, 950))
}
