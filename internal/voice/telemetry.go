package voice

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Reporter receives synthesis failures worth tracking: quota exhaustion,
// throttling and backend outages. Implementations get the provider, the voice
// id and the dialogue length, never the dialogue itself.
type Reporter interface {
	ReportFailure(ctx context.Context, provider Provider, voiceID string, textLen int, err error)
}

// LogReporter is the default Reporter; it emits a structured error event.
type LogReporter struct{}

func (LogReporter) ReportFailure(ctx context.Context, provider Provider, voiceID string, textLen int, err error) {
	log.Error().
		Err(err).
		Str("provider", provider.String()).
		Str("voice_id", voiceID).
		Int("text_length", textLen).
		Msg("Speech synthesis failed")
}

// NopReporter discards every report. Useful in tests.
type NopReporter struct{}

func (NopReporter) ReportFailure(context.Context, Provider, string, int, error) {}
