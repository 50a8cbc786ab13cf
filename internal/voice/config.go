package voice

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Endpoints holds the serverless proxy URLs the router calls. The proxies
// wrap the actual vendor APIs and own the API keys; this subsystem never sees
// a credential.
type Endpoints struct {
	GeminiTTSURL     string `env:"NPC_GEMINI_TTS_URL" envDefault:"https://us-central1-npc-assistant.cloudfunctions.net/speakGemini"`
	ElevenLabsTTSURL string `env:"NPC_ELEVENLABS_TTS_URL" envDefault:"https://us-central1-npc-assistant.cloudfunctions.net/speakElevenLabs"`
	GoogleTTSURL     string `env:"NPC_GOOGLE_TTS_URL" envDefault:"https://us-central1-npc-assistant.cloudfunctions.net/speakGoogle"`
	GeminiModel      string `env:"NPC_GEMINI_TTS_MODEL" envDefault:"gemini-2.5-flash-preview-tts"`
}

// EndpointsFromEnv loads the proxy endpoints, applying the hosted-deployment
// defaults for anything unset.
func EndpointsFromEnv() (Endpoints, error) {
	var e Endpoints
	if err := env.Parse(&e); err != nil {
		return Endpoints{}, fmt.Errorf("failed to parse endpoint config: %w", err)
	}
	return e, nil
}
