package result

import (
	"html"
	"strings"
)

// DefaultEmptyAnswer replaces responses that are blank after normalization.
const DefaultEmptyAnswer = "leer"

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Normalize strips line breaks, decodes HTML entities once and trims the
// value. A value that ends up empty becomes the empty placeholder so the
// grading table never holds a blank cell. Normalize is idempotent except
// for nested entities such as "&amp;lt;", which lose one level per call.
func Normalize(value, empty string) string {
	normalized := strings.TrimSpace(html.UnescapeString(lineBreaks.Replace(value)))
	if normalized == "" {
		return empty
	}
	return normalized
}
