package voice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Provider identifies which backend synthesizes a voice.
type Provider int

const (
	// ProviderGemini is the bundled free-tier TTS backend. It takes a short
	// voice name and returns raw 16-bit PCM.
	ProviderGemini Provider = iota
	// ProviderElevenLabs takes an opaque voice id and returns compressed audio.
	ProviderElevenLabs
	// ProviderGoogle takes an opaque voice id plus a language code and returns
	// compressed audio.
	ProviderGoogle
)

func (p Provider) String() string {
	switch p {
	case ProviderGemini:
		return "gemini"
	case ProviderElevenLabs:
		return "elevenlabs"
	case ProviderGoogle:
		return "google"
	default:
		return fmt.Sprintf("provider(%d)", int(p))
	}
}

// VoiceRecord is one entry in the voice catalog, normalized across providers.
type VoiceRecord struct {
	// ID is the provider-specific identifier used in the synthesis call.
	// For Gemini voices it equals ShortName; for the other providers it is an
	// opaque token.
	ID string
	// ShortName is the single-token human name, unique across the catalog.
	ShortName string
	// DisplayName is the full descriptive string shown to the LLM and the
	// user, and persisted on NPC records as the selection key.
	DisplayName string
	Provider    Provider
	Gender      string // "female", "male", "neutral"
	AgeBand     string // "young", "adult", "mature"
	Accent      string // optional
	// Language is the BCP-47 code required by the Google backend; empty for
	// other providers.
	Language string
}

// Catalog is the immutable registry of every known voice. Construct it once
// with NewCatalog (or DefaultCatalog) and pass it to the components that need
// it; there is no package-level instance.
type Catalog struct {
	voices    []VoiceRecord
	byShort   map[string]int
	byID      map[string]int
	byDisplay map[string]int
}

var genderOrder = map[string]int{"female": 0, "male": 1, "neutral": 2}
var ageOrder = map[string]int{"young": 0, "adult": 1, "mature": 2}

// NewCatalog builds a catalog from records, sorting them deterministically
// (gender, then age band, then short name) and validating that short names
// and display names are unique.
func NewCatalog(records []VoiceRecord) (*Catalog, error) {
	voices := make([]VoiceRecord, len(records))
	copy(voices, records)

	sort.SliceStable(voices, func(i, j int) bool {
		a, b := voices[i], voices[j]
		if genderOrder[a.Gender] != genderOrder[b.Gender] {
			return genderOrder[a.Gender] < genderOrder[b.Gender]
		}
		if ageOrder[a.AgeBand] != ageOrder[b.AgeBand] {
			return ageOrder[a.AgeBand] < ageOrder[b.AgeBand]
		}
		return a.ShortName < b.ShortName
	})

	c := &Catalog{
		voices:    voices,
		byShort:   make(map[string]int, len(voices)),
		byID:      make(map[string]int, len(voices)),
		byDisplay: make(map[string]int, len(voices)),
	}
	for i, v := range voices {
		if v.ShortName == "" || v.DisplayName == "" || v.ID == "" {
			return nil, fmt.Errorf("voice %q: id, short name and display name are required", v.ShortName)
		}
		if _, dup := c.byShort[v.ShortName]; dup {
			return nil, fmt.Errorf("duplicate voice short name %q", v.ShortName)
		}
		if _, dup := c.byDisplay[v.DisplayName]; dup {
			return nil, fmt.Errorf("duplicate voice display name %q", v.DisplayName)
		}
		c.byShort[v.ShortName] = i
		c.byDisplay[v.DisplayName] = i
		// IDs may legitimately collide with short names (Gemini), never with
		// each other.
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate voice id %q", v.ID)
		}
		c.byID[v.ID] = i
	}
	return c, nil
}

// DefaultCatalog returns the built-in voice roster. The seed list is trusted,
// so a construction failure is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultVoices())
	if err != nil {
		panic(fmt.Sprintf("voice: invalid built-in catalog: %v", err))
	}
	return c
}

// Lookup resolves a short name, provider id or display name to a record.
// Matching is case-sensitive on the catalog's stored casing; the four rules
// are tried in order and the first match wins. It never errors: a miss is
// (zero, false).
func (c *Catalog) Lookup(nameOrID string) (VoiceRecord, bool) {
	q := strings.TrimSpace(nameOrID)
	if q == "" || len(c.voices) == 0 {
		return VoiceRecord{}, false
	}
	if i, ok := c.byShort[q]; ok {
		return c.voices[i], true
	}
	if i, ok := c.byID[q]; ok {
		return c.voices[i], true
	}
	if i, ok := c.byDisplay[q]; ok {
		return c.voices[i], true
	}
	// Promote a bare name to its full display form.
	prefix := q + " "
	for _, v := range c.voices {
		if strings.HasPrefix(v.DisplayName, prefix) {
			return v, true
		}
	}
	return VoiceRecord{}, false
}

// Len reports the number of voices in the catalog.
func (c *Catalog) Len() int {
	return len(c.voices)
}

// Voices returns the catalog entries in their deterministic presentation
// order. The returned slice is a copy.
func (c *Catalog) Voices() []VoiceRecord {
	out := make([]VoiceRecord, len(c.voices))
	copy(out, c.voices)
	return out
}

// DisplayNames returns every display name in presentation order.
func (c *Catalog) DisplayNames() []string {
	out := make([]string, len(c.voices))
	for i, v := range c.voices {
		out[i] = v.DisplayName
	}
	return out
}

// Suggest returns up to limit display names that fuzzily match the query.
// This is a diagnostic aid for humans; selection logic never uses it.
func (c *Catalog) Suggest(query string, limit int) []string {
	matches := fuzzy.Find(query, c.DisplayNames())
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

var titleCaser = cases.Title(language.English)

// displayName builds the canonical display string: name plus parenthesized
// gender, age band, descriptors and optional accent.
func displayName(name, gender, ageBand, tags, accent string) string {
	parts := []string{titleCaser.String(gender), titleCaser.String(ageBand)}
	if tags != "" {
		parts = append(parts, tags)
	}
	if accent != "" {
		parts = append(parts, accent)
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(parts, ", "))
}
