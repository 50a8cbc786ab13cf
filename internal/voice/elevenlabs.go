package voice

import (
	"context"
	"encoding/base64"

	"github.com/rs/zerolog/log"
)

// proxyTTSRequest is the request shape shared by the paid-provider proxies.
// LanguageCode is populated only for the Google backend.
type proxyTTSRequest struct {
	Text         string `json:"text"`
	VoiceID      string `json:"voiceId"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// proxyTTSResponse is the shared reply: base64 pre-compressed audio or an
// error string with optional details.
type proxyTTSResponse struct {
	Audio   string `json:"audio,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// synthesizeElevenLabs calls the ElevenLabs proxy, which replies with base64
// MP3. These are paid-tier errors with low sensitivity, so backend error
// strings are surfaced mostly verbatim.
func (s *Synthesizer) synthesizeElevenLabs(ctx context.Context, dialogue string, rec VoiceRecord) (*AudioResult, error) {
	req := proxyTTSRequest{Text: dialogue, VoiceID: rec.ID}
	return s.synthesizeCompressed(ctx, s.endpoints.ElevenLabsTTSURL, ProviderElevenLabs, req)
}

// synthesizeCompressed handles the shared decode path of the paid providers.
func (s *Synthesizer) synthesizeCompressed(ctx context.Context, url string, provider Provider, req proxyTTSRequest) (*AudioResult, error) {
	var resp proxyTTSResponse
	status, err := s.postJSON(ctx, url, req, &resp)
	if err != nil {
		return nil, &SynthesisError{Provider: provider, Message: "speech backend request failed", Detail: err.Error(), Cause: err}
	}

	if resp.Error != "" {
		log.Warn().
			Int("status", status).
			Str("provider", provider.String()).
			Str("detail", resp.Details).
			Msg("TTS backend reported an error")
		return nil, &SynthesisError{Provider: provider, Message: resp.Error, Detail: resp.Details}
	}
	if resp.Audio == "" {
		return nil, &SynthesisError{Provider: provider, Message: "speech backend returned no audio", Detail: "missing audio payload"}
	}

	data, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		return nil, &SynthesisError{Provider: provider, Message: "speech backend returned unreadable audio", Detail: "invalid base64 audio payload", Cause: err}
	}

	return &AudioResult{
		Data:     data,
		MIME:     "audio/mpeg",
		Encoding: EncodingCompressed,
	}, nil
}
