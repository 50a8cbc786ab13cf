package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/jonilaserson/npc-assistant/internal/voice"
)

var (
	version  = "dev"
	revision = "none"
)

func main() {
	// Setup logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:  "npc-assistant",
		Usage: "NPC voice assistant - pick a voice for an NPC and speak its dialogue",
		Description: `npc-assistant resolves an NPC profile against the built-in voice roster
and synthesizes dialogue through the matching speech backend. Stage
directions in [brackets] are stripped before anything is spoken.`,
		Version: fmt.Sprintf("%s (rev: %s)", version, revision),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "speak",
				Usage:     "Synthesize NPC dialogue to an audio file",
				Action:    handleSpeak,
				ArgsUsage: "[text]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "text",
						Usage: "Dialogue to speak (reads stdin when omitted)",
					},
					&cli.StringFlag{
						Name:  "voice",
						Usage: "Persisted voice selection (short or display name)",
					},
					&cli.StringFlag{
						Name:  "gender",
						Usage: "NPC gender, used only for fallback selection",
					},
					&cli.StringFlag{
						Name:  "age",
						Usage: "NPC age range, used only for fallback selection",
					},
					&cli.StringFlag{
						Name:  "candidates",
						Usage: "Comma-separated LLM voice suggestions to resolve first",
					},
					&cli.StringFlag{
						Name:  "exclude",
						Usage: "Voice name the resolver must not pick",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default: temp file)",
					},
					&cli.BoolFlag{
						Name:  "play",
						Usage: "Play the result through the system audio player",
					},
				},
			},
			{
				Name:   "voices",
				Usage:  "List the voice catalog",
				Action: handleVoices,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Only show voices of one provider (gemini, elevenlabs, google)",
					},
				},
				Commands: []*cli.Command{
					{
						Name:      "lookup",
						Usage:     "Resolve a name against the catalog",
						Action:    handleVoiceLookup,
						ArgsUsage: "<name>",
					},
				},
			},
			{
				Name:      "resolve",
				Usage:     "Dry-run candidate resolution without synthesizing",
				Action:    handleResolve,
				ArgsUsage: "<candidate> [candidate...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "exclude",
						Usage: "Voice name the resolver must not pick",
					},
					&cli.StringFlag{
						Name:  "gender",
						Usage: "NPC gender for the fallback path",
					},
					&cli.StringFlag{
						Name:  "age",
						Usage: "NPC age range for the fallback path",
					},
				},
			},
		},
		Before: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// newSynthesizer wires the default catalog and env-configured endpoints.
func newSynthesizer() (*voice.Synthesizer, *voice.Catalog, error) {
	catalog := voice.DefaultCatalog()
	endpoints, err := voice.EndpointsFromEnv()
	if err != nil {
		return nil, nil, err
	}
	return voice.NewSynthesizer(catalog, endpoints), catalog, nil
}
