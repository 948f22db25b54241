// Package textutil provides text normalization helpers shared by the
// classification pipeline and the persistence layer.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern = regexp.MustCompile(`https?://\S+`)
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// Preprocess prepares raw comment text for classification: NFKC
// normalization (folds full-width ASCII and half-width katakana),
// URL and markup removal, and whitespace collapsing. May return the
// empty string.
func Preprocess(s string) string {
	s = norm.NFKC.String(s)
	s = urlPattern.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most max runes. Safe for multi-byte text; never
// splits a rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
