package voice

import "context"

// synthesizeGoogle calls the Google TTS proxy. Same reply shape as the
// ElevenLabs proxy, but the request additionally carries the voice's language
// code, which Google requires alongside the voice id.
func (s *Synthesizer) synthesizeGoogle(ctx context.Context, dialogue string, rec VoiceRecord) (*AudioResult, error) {
	req := proxyTTSRequest{Text: dialogue, VoiceID: rec.ID, LanguageCode: rec.Language}
	return s.synthesizeCompressed(ctx, s.endpoints.GoogleTTSURL, ProviderGoogle, req)
}
