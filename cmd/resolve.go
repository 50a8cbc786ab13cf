package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jonilaserson/npc-assistant/internal/voice"
)

func handleResolve(ctx context.Context, c *cli.Command) error {
	catalog := voice.DefaultCatalog()
	resolver := voice.NewResolver(catalog, nil)

	candidates := c.Args().Slice()
	if displayName, ok := resolver.Resolve(candidates, c.String("exclude")); ok {
		fmt.Println(displayName)
		return nil
	}

	// Empty or unresolvable candidates: show what the profile fallback would
	// choose instead.
	short := voice.SelectFallback(c.String("gender"), c.String("age"))
	rec, ok := catalog.Lookup(short)
	if !ok {
		return fmt.Errorf("fallback voice %q missing from catalog", short)
	}
	fmt.Printf("%s (profile fallback)\n", rec.DisplayName)
	return nil
}
