package apperrors

import (
	"errors"
	"strings"
)

// Friendly is the user-facing wording for a failed mutation.
type Friendly struct {
	Title       string
	Description string
}

var (
	friendlyQuota = Friendly{
		Title:       "Analysis limit reached",
		Description: "The photo analysis service is busy right now. Please try again in a little while.",
	}
	friendlyMissingKey = Friendly{
		Title:       "Analysis unavailable",
		Description: "Photo analysis has not been configured yet. Please ask the hosts to enable it.",
	}
	friendlyUnauthorized = Friendly{
		Title:       "Please sign in",
		Description: "Your session has ended. Sign in again to continue.",
	}
	friendlyNotFound = Friendly{
		Title:       "Not found",
		Description: "The item you were looking for no longer exists.",
	}
)

// FriendlyMessage chooses the wording for err. Coded errors are matched
// exhaustively; substring matching on the message only applies to uncoded errors.
func FriendlyMessage(title string, err error) Friendly {
	if err == nil {
		return Friendly{Title: title}
	}

	switch CodeOf(err) {
	case CodeQuotaExceeded, CodeRateLimited:
		return friendlyQuota
	case CodeMissingAPIKey:
		return friendlyMissingKey
	case CodeUnauthorized:
		return friendlyUnauthorized
	case CodeNotFound, CodeEnhancementNotFound:
		return friendlyNotFound
	case CodeValidationFailed, CodeInternal:
		return Friendly{Title: title, Description: messageOf(err)}
	case CodeUnknown:
		return legacyFriendlyMessage(title, err)
	}
	return legacyFriendlyMessage(title, err)
}

func legacyFriendlyMessage(title string, err error) Friendly {
	if errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrRateLimited) {
		return friendlyQuota
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return friendlyMissingKey
	}

	msg := strings.ToLower(messageOf(err))
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return friendlyQuota
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key"):
		return friendlyMissingKey
	}
	return Friendly{Title: title, Description: messageOf(err)}
}

func messageOf(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
