package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Pagination bounds
const (
	DefaultPage     = 1
	DefaultLimit    = 12
	MaxLimit        = 100
	DefaultMaxChars = 255
)

var controlChars = regexp.MustCompile(`[\x00-\x1F\x7F]`)

// Pagination is a normalised page/limit pair.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the zero-based offset of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SanitizeString trims input, strips ASCII control characters and truncates it
// to maxLength characters. A non-positive maxLength means DefaultMaxChars.
func SanitizeString(input string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxChars
	}

	cleaned := controlChars.ReplaceAllString(strings.TrimSpace(input), "")
	if utf8.RuneCountInString(cleaned) > maxLength {
		cleaned = string([]rune(cleaned)[:maxLength])
	}
	return cleaned
}

// ValidatePagination never fails: a nil or NaN page becomes 1 and a nil or NaN
// limit becomes 12, values are rounded, page is floored at 1 and limit clamped to [1,100].
func ValidatePagination(page, limit *float64) Pagination {
	result := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if page != nil && !math.IsNaN(*page) {
		result.Page = max(DefaultPage, roundHalfUp(*page))
	}
	if limit != nil && !math.IsNaN(*limit) {
		result.Limit = min(MaxLimit, max(1, roundHalfUp(*limit)))
	}
	return result
}

// ParsePagination parses raw query values and normalises them with ValidatePagination.
func ParsePagination(rawPage, rawLimit string) Pagination {
	return ValidatePagination(parseOptionalFloat(rawPage), parseOptionalFloat(rawLimit))
}

// ParseLimit coerces a raw limit the way ValidatePagination does, using
// fallback when raw is missing or not a number.
func ParseLimit(raw string, fallback int) int {
	limit := parseOptionalFloat(raw)
	if limit == nil || math.IsNaN(*limit) {
		return min(MaxLimit, max(1, fallback))
	}
	return min(MaxLimit, max(1, roundHalfUp(*limit)))
}

// ValidateID parses a positive integer identifier; ok is false for anything else.
func ValidateID(raw string) (id int64, ok bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// roundHalfUp rounds .5 towards positive infinity and saturates at the int range.
func roundHalfUp(v float64) int {
	r := math.Floor(v + 0.5)
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	if r < math.MinInt32 {
		return math.MinInt32
	}
	return int(r)
}
