package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is one of the site's supported language codes.
type Lang string

const (
	Ukrainian Lang = "uk"
	English   Lang = "en"
	Russian   Lang = "ru"
)

// Default is used when the session carries no valid preference.
const Default = Ukrainian

// Fallback is the variant used for localized fields when an unsupported
// language is requested.
const Fallback = English

var supported = []Lang{Ukrainian, English, Russian}

var tags = map[Lang]language.Tag{
	Ukrainian: language.Ukrainian,
	English:   language.English,
	Russian:   language.Russian,
}

// Supported returns the supported codes in display order.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// Parse validates a raw code. Codes are matched exactly; "EN" or "en-US" are
// not accepted.
func Parse(code string) (Lang, bool) {
	l := Lang(code)
	if _, ok := tags[l]; ok {
		return l, true
	}
	return "", false
}

// Resolve turns a stored session value into an active language, defaulting
// to Ukrainian when the value is absent or invalid.
func Resolve(v any) Lang {
	s, ok := v.(string)
	if !ok {
		return Default
	}
	if l, ok := Parse(strings.TrimSpace(s)); ok {
		return l
	}
	return Default
}

// IsSupported reports whether l is one of the three site languages.
func (l Lang) IsSupported() bool {
	_, ok := tags[l]
	return ok
}

// Tag returns the BCP 47 tag for l (English for unsupported codes).
func (l Lang) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.English
}

func (l Lang) String() string { return string(l) }

// Localized holds one value per supported language.
type Localized map[Lang]string

// Get returns the value for lang. An unsupported lang reads the English
// variant; a supported lang with no value returns "" without falling back.
func (m Localized) Get(lang Lang) string {
	if !lang.IsSupported() {
		lang = Fallback
	}
	return m[lang]
}
