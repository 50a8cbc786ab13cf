package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/jonilaserson/npc-assistant/internal/audio"
	"github.com/jonilaserson/npc-assistant/internal/voice"
)

func handleSpeak(ctx context.Context, c *cli.Command) error {
	text := c.String("text")
	if text == "" {
		text = c.Args().Get(0)
	}
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to speak")
	}

	synth, catalog, err := newSynthesizer()
	if err != nil {
		return err
	}

	voiceID := c.String("voice")

	// A candidate list takes precedence over --voice: it is the regenerate
	// flow, where the LLM proposed new voices and the current one may be
	// excluded.
	if raw := c.String("candidates"); raw != "" {
		candidates := splitCandidates(raw)
		resolver := voice.NewResolver(catalog, nil)
		if displayName, ok := resolver.Resolve(candidates, c.String("exclude")); ok {
			voiceID = displayName
			log.Info().Str("voice", displayName).Msg("Resolved candidate voice")
		} else {
			log.Warn().Msg("No candidate resolved, falling back to profile voice")
		}
	}

	result, err := synth.Synthesize(ctx, text, voice.NPCProfile{
		VoiceID:  voiceID,
		Gender:   c.String("gender"),
		AgeRange: c.String("age"),
	})
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		f, err := os.CreateTemp("", "npc_*"+extensionFor(result))
		if err != nil {
			return fmt.Errorf("failed to create temp file: %w", err)
		}
		out = f.Name()
		_ = f.Close()
	}
	if err := os.WriteFile(out, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	fmt.Println(out)

	if c.Bool("play") {
		if err := audio.Play(out); err != nil {
			return err
		}
	}
	return nil
}

func splitCandidates(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func extensionFor(result *voice.AudioResult) string {
	if result.Encoding == voice.EncodingWAV {
		return ".wav"
	}
	return ".mp3"
}
