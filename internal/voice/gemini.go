package voice

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jonilaserson/npc-assistant/internal/audio"
)

// defaultGeminiSampleRate applies when the response mime type carries no
// rate= parameter.
const defaultGeminiSampleRate = 24000

var sampleRateRE = regexp.MustCompile(`rate=(\d+)`)

// Request/response shapes of the bundled-TTS proxy, mirroring the Gemini
// generateContent audio surface.
type geminiRequest struct {
	Model            string                 `json:"model"`
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities"`
	SpeechConfig       geminiSpeechConfig `json:"speechConfig"`
}

type geminiSpeechConfig struct {
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Error      *geminiError      `json:"error,omitempty"`
	Candidates []geminiCandidate `json:"candidates,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type geminiCandidate struct {
	Content struct {
		Parts []struct {
			InlineData *struct {
				Data     string `json:"data"`
				MimeType string `json:"mimeType"`
			} `json:"inlineData,omitempty"`
		} `json:"parts"`
	} `json:"content"`
}

// synthesizeGemini calls the free-tier backend, which returns base64 raw
// 16-bit PCM, and packages the samples as a WAV container. Backend error text
// is never passed through to the caller: 429 maps to quota exhaustion,
// everything else to a fixed "service unavailable".
func (s *Synthesizer) synthesizeGemini(ctx context.Context, dialogue string, rec VoiceRecord) (*AudioResult, error) {
	req := geminiRequest{
		Model:    s.endpoints.GeminiModel,
		Contents: []geminiContent{{Parts: []geminiPart{{Text: dialogue}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: geminiSpeechConfig{
				VoiceConfig: geminiVoiceConfig{
					PrebuiltVoiceConfig: geminiPrebuiltVoiceConfig{VoiceName: rec.ID},
				},
			},
		},
	}

	var resp geminiResponse
	status, err := s.postJSON(ctx, s.endpoints.GeminiTTSURL, req, &resp)
	if err != nil {
		return nil, &SynthesisError{Provider: ProviderGemini, Message: "speech service unavailable", Detail: err.Error(), Cause: err}
	}

	if resp.Error != nil || status == http.StatusTooManyRequests {
		code := status
		detail := ""
		if resp.Error != nil {
			code = resp.Error.Code
			detail = resp.Error.Message
		}
		log.Warn().Int("code", code).Str("detail", detail).Msg("Gemini TTS backend error")
		if code == http.StatusTooManyRequests {
			return nil, &QuotaExceededError{Provider: ProviderGemini}
		}
		return nil, &SynthesisError{
			Provider: ProviderGemini,
			Message:  "speech service unavailable",
			Detail:   fmt.Sprintf("code %d: %s", code, detail),
		}
	}

	data, mimeType, ok := firstInlineData(resp)
	if !ok {
		return nil, &SynthesisError{Provider: ProviderGemini, Message: "speech service unavailable", Detail: "response carried no audio payload"}
	}

	pcm, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, &SynthesisError{Provider: ProviderGemini, Message: "speech service unavailable", Detail: "invalid base64 audio payload", Cause: err}
	}

	rate := sampleRateFromMime(mimeType)
	samples := audio.DecodePCM16(pcm)
	return &AudioResult{
		Data:       audio.EncodeWAV(samples, rate),
		MIME:       "audio/wav",
		Encoding:   EncodingWAV,
		SampleRate: rate,
	}, nil
}

// firstInlineData finds the first candidate part carrying audio.
func firstInlineData(resp geminiResponse) (data, mimeType string, ok bool) {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, p.InlineData.MimeType, true
			}
		}
	}
	return "", "", false
}

// sampleRateFromMime extracts the rate= parameter from a mime string like
// "audio/L16;codec=pcm;rate=24000".
func sampleRateFromMime(mimeType string) int {
	m := sampleRateRE.FindStringSubmatch(mimeType)
	if m == nil {
		return defaultGeminiSampleRate
	}
	rate, err := strconv.Atoi(m[1])
	if err != nil || rate <= 0 {
		return defaultGeminiSampleRate
	}
	return rate
}
