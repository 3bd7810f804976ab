package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrExtensionNotAllowed = errors.New("file extension not allowed")

// AllowedExtensions lists accepted upload extensions, lower case, no dot.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.\-]+`)

// asciiFold decomposes accented letters and drops whatever is left outside
// ASCII. Transformers carry state, so each call gets a fresh chain.
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Allowed reports whether name carries a whitelisted extension.
func Allowed(name string) bool {
	return AllowedExtensions[Extension(name)]
}

// SafeName reduces name to ASCII letters, digits, '_', '.' and '-'. Path
// separators and whitespace become underscores; leading and trailing dots
// and underscores are dropped. The result may be empty.
func SafeName(name string) string {
	name, _, err := transform.String(asciiFold(), name)
	if err != nil {
		return ""
	}
	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// StoredName builds the on-disk name for an upload: "{stem}_{unix}{.ext}".
// The extension keeps its uploaded case; only the whitelist check ignores
// case.
func StoredName(original string, now time.Time) (string, error) {
	if !Allowed(original) {
		return "", fmt.Errorf("%q: %w", original, ErrExtensionNotAllowed)
	}
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := SafeName(strings.TrimSuffix(base, ext))
	if stem == "" {
		stem = "painting"
	}
	return fmt.Sprintf("%s_%d%s", stem, now.Unix(), ext), nil
}

// ContentType maps an allowed extension to its MIME type.
func ContentType(name string) string {
	switch Extension(name) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
