package siteapi

import (
	"net/url"
	"strconv"
	"strings"
)

// parseID reads a positive numeric path or query id.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// backTo reduces a referrer to a same-site path, or "/" when there is none.
func backTo(referer string) string {
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "/"
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
