package videogen

import "errors"

// Provider failures normalized into domain errors. Handlers translate each
// into a distinct user-visible message.
var (
	ErrMissingAPIKey       = errors.New("video provider API key is not configured")
	ErrUnauthorized        = errors.New("video provider API key is invalid or expired")
	ErrInsufficientBalance = errors.New("video provider account has insufficient balance")
	ErrRateLimited         = errors.New("video provider request volume exceeded")
	ErrTimeout             = errors.New("video generation request timed out")
)

// ProviderError carries the provider's own message for response shapes that
// do not map onto one of the sentinel errors above.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "video provider returned an unexpected response"
	}
	return "video provider error: " + e.Message
}
