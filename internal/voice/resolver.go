package voice

import (
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Rand supplies the randomness used for candidate tie-breaking. *rand.Rand
// satisfies it; tests inject a deterministic source.
type Rand interface {
	Intn(n int) int
}

// Resolver turns a noisy list of LLM-suggested voice names into one
// validated, catalog-resolvable display name.
type Resolver struct {
	catalog *Catalog
	rand    Rand
}

// NewResolver creates a resolver over the given catalog. A nil rng falls back
// to a time-seeded source.
func NewResolver(catalog *Catalog, rng Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{catalog: catalog, rand: rng}
}

// Resolve picks one display name from candidates, never choosing a voice
// whose bare name equals exclude. The pick among surviving candidates is
// uniformly random. If exclusion removes every candidate, the whole catalog
// minus the excluded name becomes the pool; an empty or fully unresolvable
// candidate list is the only not-found case.
func (r *Resolver) Resolve(candidates []string, exclude string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	survivors := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if exclude != "" && bareName(c) == exclude {
			continue
		}
		survivors = append(survivors, c)
	}

	var chosen string
	if len(survivors) > 0 {
		chosen = survivors[r.rand.Intn(len(survivors))]
	} else {
		// Every candidate was excluded. Fall back to a random pick over the
		// full catalog, still honoring the exclusion.
		pool := make([]string, 0, r.catalog.Len())
		for _, dn := range r.catalog.DisplayNames() {
			if bareName(dn) == exclude {
				continue
			}
			pool = append(pool, dn)
		}
		if len(pool) == 0 {
			return "", false
		}
		chosen = bareName(pool[r.rand.Intn(len(pool))])
		log.Debug().Str("chosen", chosen).Msg("all candidates excluded, picked from full catalog")
	}

	chosen = strings.TrimSpace(strings.Trim(strings.TrimSpace(chosen), `"'`))
	for _, promote := range promotionOrder {
		if rec, ok := promote(r.catalog, chosen); ok {
			return rec.DisplayName, true
		}
	}
	log.Debug().Str("candidate", chosen).Msg("candidate did not resolve against catalog")
	return "", false
}

// promotionOrder is the ordered list of strategies that turn a chosen name
// into a full catalog entry. First success wins.
var promotionOrder = []func(*Catalog, string) (VoiceRecord, bool){
	promoteByDisplayPrefix,
	promoteByDisplayName,
	promoteByShortName,
}

func promoteByDisplayPrefix(c *Catalog, name string) (VoiceRecord, bool) {
	prefix := name + " "
	for _, v := range c.voices {
		if strings.HasPrefix(v.DisplayName, prefix) {
			return v, true
		}
	}
	return VoiceRecord{}, false
}

func promoteByDisplayName(c *Catalog, name string) (VoiceRecord, bool) {
	if i, ok := c.byDisplay[name]; ok {
		return c.voices[i], true
	}
	return VoiceRecord{}, false
}

func promoteByShortName(c *Catalog, name string) (VoiceRecord, bool) {
	if i, ok := c.byShort[name]; ok {
		return c.voices[i], true
	}
	return VoiceRecord{}, false
}

// bareName extracts the first whitespace-delimited token, with surrounding
// quotes stripped. Exclusion comparisons run on this token, not the full
// display string.
func bareName(s string) string {
	fields := strings.Fields(strings.Trim(strings.TrimSpace(s), `"'`))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
