package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonilaserson/npc-assistant/internal/retryhttp"
)

// Encoding tags how an AudioResult's bytes are packaged.
type Encoding int

const (
	// EncodingWAV is an uncompressed PCM WAV container.
	EncodingWAV Encoding = iota
	// EncodingCompressed is pre-compressed audio (MP3) as returned by the
	// paid providers.
	EncodingCompressed
)

// AudioResult is the playable outcome of a synthesis call. The caller owns
// it; the synthesizer keeps no reference once it returns.
type AudioResult struct {
	Data     []byte
	MIME     string
	Encoding Encoding
	// SampleRate is set for WAV results only.
	SampleRate int
}

// NPCProfile is the slice of an NPC record the router needs: the persisted
// voice selection plus the traits used for fallback selection.
type NPCProfile struct {
	VoiceID  string
	Gender   string
	AgeRange string
}

// Doer issues HTTP requests. In production this is the retrying client;
// tests substitute a plain http.Client against httptest servers.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Synthesizer routes NPC dialogue to the right speech backend for the
// resolved voice and normalizes the provider payload into an AudioResult.
type Synthesizer struct {
	catalog   *Catalog
	endpoints Endpoints
	client    Doer
	reporter  Reporter
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithHTTPClient replaces the default retrying HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(s *Synthesizer) { s.client = d }
}

// WithReporter replaces the default log-backed telemetry reporter.
func WithReporter(r Reporter) Option {
	return func(s *Synthesizer) { s.reporter = r }
}

// NewSynthesizer creates a synthesizer over an immutable catalog.
func NewSynthesizer(catalog *Catalog, endpoints Endpoints, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		catalog:   catalog,
		endpoints: endpoints,
		client:    retryhttp.New(),
		reporter:  LogReporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultVoiceShortName is the absolute last resort when every resolution
// strategy, including the profile fallback, fails to produce a record.
const defaultVoiceShortName = "Charon"

// Synthesize strips stage directions from rawText, resolves the profile's
// voice with a guaranteed-terminal fallback chain, calls the provider backend
// and returns playable audio. It fails only on empty dialogue, an empty
// catalog, or a terminal backend error.
func (s *Synthesizer) Synthesize(ctx context.Context, rawText string, profile NPCProfile) (*AudioResult, error) {
	if s.catalog == nil || s.catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	dialogue := ExtractDialogue(rawText)
	if dialogue == "" {
		return nil, ErrNoDialogue
	}

	rec := s.resolveVoice(profile)
	log.Debug().
		Str("voice", rec.ShortName).
		Str("provider", rec.Provider.String()).
		Int("text_length", len(dialogue)).
		Msg("Dispatching speech synthesis")

	result, err := s.dispatch(ctx, dialogue, rec)
	if err != nil {
		if isCritical(err) {
			s.reporter.ReportFailure(ctx, rec.Provider, rec.ID, len(dialogue), err)
		}
		return nil, err
	}
	return result, nil
}

// voiceStrategy is one step of the resolution chain: a name for logging and
// a lookup attempt.
type voiceStrategy struct {
	name string
	find func() (VoiceRecord, bool)
}

// resolveVoice runs the ordered resolution strategies and returns the first
// hit. The chain is total: the last strategy resolves a hardcoded catalog
// entry, so synthesis can only fail at the network boundary.
func (s *Synthesizer) resolveVoice(profile NPCProfile) VoiceRecord {
	strategies := []voiceStrategy{
		{"voice_id", func() (VoiceRecord, bool) {
			return s.catalog.Lookup(profile.VoiceID)
		}},
		{"voice_id_first_token", func() (VoiceRecord, bool) {
			fields := strings.Fields(profile.VoiceID)
			if len(fields) == 0 {
				return VoiceRecord{}, false
			}
			return s.catalog.Lookup(fields[0])
		}},
		{"profile_fallback", func() (VoiceRecord, bool) {
			return s.catalog.Lookup(SelectFallback(profile.Gender, profile.AgeRange))
		}},
		{"default_voice", func() (VoiceRecord, bool) {
			return s.catalog.Lookup(defaultVoiceShortName)
		}},
	}
	for _, st := range strategies {
		if rec, ok := st.find(); ok {
			if st.name != "voice_id" {
				log.Debug().
					Str("strategy", st.name).
					Str("requested", profile.VoiceID).
					Str("resolved", rec.ShortName).
					Msg("Voice resolved via fallback strategy")
			}
			return rec
		}
	}
	// Unreachable with a non-empty catalog containing the default voice, but
	// keep the zero value from escaping if the roster is ever misconfigured.
	return s.catalog.voices[0]
}

// dispatch selects the provider-specific synthesis call. Adding a provider
// means adding a Provider variant and a case here.
func (s *Synthesizer) dispatch(ctx context.Context, dialogue string, rec VoiceRecord) (*AudioResult, error) {
	switch rec.Provider {
	case ProviderGemini:
		return s.synthesizeGemini(ctx, dialogue, rec)
	case ProviderElevenLabs:
		return s.synthesizeElevenLabs(ctx, dialogue, rec)
	case ProviderGoogle:
		return s.synthesizeGoogle(ctx, dialogue, rec)
	default:
		return nil, &SynthesisError{
			Provider: rec.Provider,
			Message:  "speech service unavailable",
			Detail:   fmt.Sprintf("no backend for provider %s", rec.Provider),
		}
	}
}

// postJSON sends a JSON body to a proxy endpoint, decodes the JSON reply and
// reports the HTTP status. Retry and backoff live in the injected client; by
// the time an error comes back here it is terminal.
func (s *Synthesizer) postJSON(ctx context.Context, url string, in, out any) (int, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return resp.StatusCode, fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}
