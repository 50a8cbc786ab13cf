package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/jonilaserson/npc-assistant/internal/voice"
)

func handleVoices(ctx context.Context, c *cli.Command) error {
	catalog := voice.DefaultCatalog()
	filter := c.String("provider")

	providerColor := map[voice.Provider]*color.Color{
		voice.ProviderGemini:     color.New(color.FgCyan),
		voice.ProviderElevenLabs: color.New(color.FgMagenta),
		voice.ProviderGoogle:     color.New(color.FgGreen),
	}

	shown := 0
	for _, v := range catalog.Voices() {
		if filter != "" && v.Provider.String() != filter {
			continue
		}
		tag := providerColor[v.Provider].Sprintf("%-10s", v.Provider)
		fmt.Printf("  %s %s\n", tag, v.DisplayName)
		shown++
	}
	if shown == 0 {
		return fmt.Errorf("unknown provider %q", filter)
	}
	fmt.Printf("\n%d voices\n", shown)
	return nil
}

func handleVoiceLookup(ctx context.Context, c *cli.Command) error {
	name := c.Args().Get(0)
	if name == "" {
		return fmt.Errorf("voice name is required")
	}

	catalog := voice.DefaultCatalog()
	if rec, ok := catalog.Lookup(name); ok {
		fmt.Printf("%s\n  provider: %s\n  id: %s\n  gender: %s\n  age: %s\n",
			rec.DisplayName, rec.Provider, rec.ID, rec.Gender, rec.AgeBand)
		if rec.Accent != "" {
			fmt.Printf("  accent: %s\n", rec.Accent)
		}
		return nil
	}

	// Lookup is case-sensitive; offer fuzzy suggestions before giving up.
	if suggestions := catalog.Suggest(name, 3); len(suggestions) > 0 {
		fmt.Printf("No exact match for %q. Did you mean:\n", name)
		for _, s := range suggestions {
			fmt.Printf("  %s\n", s)
		}
		return nil
	}
	return fmt.Errorf("no voice matches %q", name)
}
