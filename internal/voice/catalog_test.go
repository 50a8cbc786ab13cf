package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []VoiceRecord {
	return []VoiceRecord{
		{ID: "Charon", ShortName: "Charon", DisplayName: "Charon (Male, Adult, Smooth)", Provider: ProviderGemini, Gender: "male", AgeBand: "adult"},
		{ID: "Kore", ShortName: "Kore", DisplayName: "Kore (Female, Adult, Calm)", Provider: ProviderGemini, Gender: "female", AgeBand: "adult"},
		{ID: "21m00Tcm4TlvDq8ikWAM", ShortName: "Rachel", DisplayName: "Rachel (Female, Adult, Narrative)", Provider: ProviderElevenLabs, Gender: "female", AgeBand: "adult"},
		{ID: "en-GB-Neural2-A", ShortName: "Imogen", DisplayName: "Imogen (Female, Adult, Polished, British)", Provider: ProviderGoogle, Gender: "female", AgeBand: "adult", Language: "en-GB"},
	}
}

func TestCatalog_LookupRules(t *testing.T) {
	catalog, err := NewCatalog(testRecords())
	require.NoError(t, err)

	t.Run("exact short name", func(t *testing.T) {
		rec, ok := catalog.Lookup("Charon")
		require.True(t, ok)
		assert.Equal(t, "Charon (Male, Adult, Smooth)", rec.DisplayName)
	})

	t.Run("exact provider id", func(t *testing.T) {
		rec, ok := catalog.Lookup("21m00Tcm4TlvDq8ikWAM")
		require.True(t, ok)
		assert.Equal(t, "Rachel", rec.ShortName)
	})

	t.Run("exact display name", func(t *testing.T) {
		rec, ok := catalog.Lookup("Charon (Male, Adult, Smooth)")
		require.True(t, ok)
		assert.Equal(t, "Charon", rec.ShortName)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		rec, ok := catalog.Lookup("  Kore  ")
		require.True(t, ok)
		assert.Equal(t, "Kore", rec.ShortName)
	})

	t.Run("miss returns not found, never errors", func(t *testing.T) {
		_, ok := catalog.Lookup("Nobody")
		assert.False(t, ok)
		_, ok = catalog.Lookup("")
		assert.False(t, ok)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		// Deliberate: the persisted keys use catalog casing, and a
		// case-insensitive match could change which voice wins.
		_, ok := catalog.Lookup("charon")
		assert.False(t, ok)
	})
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	recs := testRecords()
	recs = append(recs, VoiceRecord{
		ID: "other-id", ShortName: "Charon", DisplayName: "Charon (Other)",
		Provider: ProviderElevenLabs, Gender: "male", AgeBand: "adult",
	})
	_, err := NewCatalog(recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestDefaultCatalog_Invariants(t *testing.T) {
	catalog := DefaultCatalog()

	assert.GreaterOrEqual(t, catalog.Len(), 100)

	seenShort := make(map[string]bool)
	seenDisplay := make(map[string]bool)
	for _, v := range catalog.Voices() {
		assert.False(t, seenShort[v.ShortName], "duplicate short name %q", v.ShortName)
		assert.False(t, seenDisplay[v.DisplayName], "duplicate display name %q", v.DisplayName)
		seenShort[v.ShortName] = true
		seenDisplay[v.DisplayName] = true

		// Every entry must resolve through each of its own keys.
		for _, key := range []string{v.ShortName, v.ID, v.DisplayName} {
			rec, ok := catalog.Lookup(key)
			require.True(t, ok, "lookup %q", key)
			assert.Equal(t, v.DisplayName, rec.DisplayName)
		}

		// Gemini voices are addressed by short name; Google voices need a
		// language code.
		if v.Provider == ProviderGemini {
			assert.Equal(t, v.ShortName, v.ID)
		}
		if v.Provider == ProviderGoogle {
			assert.NotEmpty(t, v.Language, "voice %s", v.ShortName)
		}
	}
}

func TestDefaultCatalog_PresentationOrder(t *testing.T) {
	catalog := DefaultCatalog()

	rank := func(v VoiceRecord) int {
		return genderOrder[v.Gender]*10 + ageOrder[v.AgeBand]
	}
	voices := catalog.Voices()
	for i := 1; i < len(voices); i++ {
		prev, cur := voices[i-1], voices[i]
		require.LessOrEqual(t, rank(prev), rank(cur),
			"%s before %s breaks gender/age ordering", prev.ShortName, cur.ShortName)
		if rank(prev) == rank(cur) {
			assert.Less(t, prev.ShortName, cur.ShortName)
		}
	}
}

func TestCatalog_LookupPromotesBareName(t *testing.T) {
	catalog := DefaultCatalog()

	rec, ok := catalog.Lookup("Fenrir")
	require.True(t, ok)
	assert.Equal(t, ProviderGemini, rec.Provider)
	assert.Regexp(t, `^Fenrir \(`, rec.DisplayName)

	again, ok := catalog.Lookup(rec.DisplayName)
	require.True(t, ok)
	assert.Equal(t, rec, again)
}

func TestCatalog_Suggest(t *testing.T) {
	catalog := DefaultCatalog()

	suggestions := catalog.Suggest("fenrir", 3)
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions[0], "Fenrir")
}
