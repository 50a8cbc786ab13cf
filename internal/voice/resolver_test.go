package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns a predetermined sequence of picks, reduced modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestResolver_EmptyCandidates(t *testing.T) {
	resolver := NewResolver(DefaultCatalog(), &fixedRand{vals: []int{0}})

	_, ok := resolver.Resolve(nil, "")
	assert.False(t, ok)
	_, ok = resolver.Resolve([]string{}, "Fenrir")
	assert.False(t, ok)
}

func TestResolver_PicksAmongCandidates(t *testing.T) {
	catalog := DefaultCatalog()
	candidates := []string{"Fenrir", "Roger", "Sarah"}

	// Each rand outcome maps to the corresponding candidate.
	for i, want := range candidates {
		resolver := NewResolver(catalog, &fixedRand{vals: []int{i}})
		displayName, ok := resolver.Resolve(candidates, "")
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(displayName, want+" "),
			"picked %q for rand=%d, want bare name %q", displayName, i, want)

		// The result must be a real catalog key.
		_, found := catalog.Lookup(displayName)
		assert.True(t, found)
	}
}

func TestResolver_StripsQuotes(t *testing.T) {
	resolver := NewResolver(DefaultCatalog(), &fixedRand{vals: []int{0}})

	displayName, ok := resolver.Resolve([]string{`"Fenrir"`}, "")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(displayName, "Fenrir "))
}

func TestResolver_AcceptsFullDisplayNames(t *testing.T) {
	catalog := DefaultCatalog()
	rec, ok := catalog.Lookup("Rachel")
	require.True(t, ok)

	resolver := NewResolver(catalog, &fixedRand{vals: []int{0}})
	displayName, resolved := resolver.Resolve([]string{rec.DisplayName}, "")
	require.True(t, resolved)
	assert.Equal(t, rec.DisplayName, displayName)
}

func TestResolver_ExclusionRespected(t *testing.T) {
	catalog := DefaultCatalog()
	candidates := []string{"Fenrir", "Roger", "Sarah"}

	for seed := 0; seed < 10; seed++ {
		resolver := NewResolver(catalog, &fixedRand{vals: []int{seed}})
		displayName, ok := resolver.Resolve(candidates, "Roger")
		require.True(t, ok)
		assert.NotEqual(t, "Roger", bareName(displayName))
	}
}

// A single candidate that is itself excluded degenerates to a random pick
// over the whole catalog. That is a legitimate state, not a failure.
func TestResolver_AllCandidatesExcluded(t *testing.T) {
	catalog := DefaultCatalog()

	for seed := 0; seed < 25; seed++ {
		resolver := NewResolver(catalog, &fixedRand{vals: []int{seed * 7}})
		displayName, ok := resolver.Resolve([]string{"Fenrir"}, "Fenrir")
		require.True(t, ok)
		assert.NotEqual(t, "Fenrir", bareName(displayName))
		_, found := catalog.Lookup(displayName)
		assert.True(t, found)
	}
}

func TestResolver_UnresolvableCandidate(t *testing.T) {
	resolver := NewResolver(DefaultCatalog(), &fixedRand{vals: []int{0}})

	_, ok := resolver.Resolve([]string{"Zorblax"}, "")
	assert.False(t, ok)
}

func TestResolver_ExclusionComparesBareNames(t *testing.T) {
	catalog := DefaultCatalog()
	rec, ok := catalog.Lookup("Fenrir")
	require.True(t, ok)

	// Excluding "Fenrir" must also knock out its full display form.
	resolver := NewResolver(catalog, &fixedRand{vals: []int{0}})
	displayName, resolved := resolver.Resolve([]string{rec.DisplayName, "Sarah"}, "Fenrir")
	require.True(t, resolved)
	assert.True(t, strings.HasPrefix(displayName, "Sarah "))
}

func TestResolver_NilRandDefaultsToSeeded(t *testing.T) {
	resolver := NewResolver(DefaultCatalog(), nil)

	displayName, ok := resolver.Resolve([]string{"Fenrir"}, "")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(displayName, "Fenrir "))
}
