// Package sanitize escapes and normalises untrusted text before it is
// rendered or written to disk.
package sanitize

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxFilenameLength is the longest filename SanitizeFilename returns.
const MaxFilenameLength = 255

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9\-_.]`)
	repeatedDots        = regexp.MustCompile(`\.{2,}`)
)

// EscapeHTML replaces & < > " ' / with their HTML entities.
// It is not idempotent: escaping twice double-escapes, so apply it once per render boundary.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// SanitizeInput trims surrounding whitespace and escapes the result.
func SanitizeInput(input string) string {
	return EscapeHTML(strings.TrimSpace(input))
}

// SanitizeOptional treats a nil input as the empty string.
func SanitizeOptional(input *string) string {
	if input == nil {
		return ""
	}
	return SanitizeInput(*input)
}

// SanitizeFilename replaces every character outside [A-Za-z0-9-_.] with '_',
// collapses runs of dots and truncates to MaxFilenameLength.
func SanitizeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	safe = repeatedDots.ReplaceAllString(safe, ".")
	if len(safe) > MaxFilenameLength {
		safe = safe[:MaxFilenameLength]
	}
	return safe
}

// IsValidURL reports whether raw is an absolute http or https URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
