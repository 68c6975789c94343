package speech

import "errors"

var (
	ErrTextRequired  = errors.New("text is required")
	ErrVoiceRequired = errors.New("voice is required")
)
