package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Synthesizer is the provider surface the service depends on, so tests can
// substitute a stub for the HTTP client.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, providerVoiceID string) ([]byte, error)
}

// Preview is the outcome of a speech preview: where the audio can be fetched,
// an estimated duration in seconds, and whether the default provider voice
// was substituted for an unknown voice id.
type Preview struct {
	AudioURL      string
	Duration      float64
	VoiceFallback bool
}

// Service turns preview requests into one synchronous provider call and
// persists the returned audio under the media directory.
type Service struct {
	client       Synthesizer
	mediaDir     string
	mediaBaseURL string
}

func NewService(client Synthesizer, mediaDir, mediaBaseURL string) *Service {
	return &Service{
		client:       client,
		mediaDir:     mediaDir,
		mediaBaseURL: mediaBaseURL,
	}
}

// secondsPerChar estimates spoken duration from text length. It is a
// heuristic, not measured from the audio.
const secondsPerChar = 0.1

// SynthesizePreview validates input, synthesizes speech and writes the audio
// to a caller-reachable location.
func (s *Service) SynthesizePreview(ctx context.Context, text, voiceID string) (*Preview, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if strings.TrimSpace(voiceID) == "" {
		return nil, ErrVoiceRequired
	}

	providerVoice, fellBack := MapVoice(voiceID)

	audio, err := s.client.Synthesize(ctx, text, providerVoice)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	name := fmt.Sprintf("preview_%s.mp3", uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.mediaDir, name), audio, 0o644); err != nil {
		return nil, fmt.Errorf("write preview audio: %w", err)
	}

	return &Preview{
		AudioURL:      s.mediaBaseURL + "/" + name,
		Duration:      float64(len([]rune(text))) * secondsPerChar,
		VoiceFallback: fellBack,
	}, nil
}
