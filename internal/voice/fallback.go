package voice

import "strings"

// Fallback voices per gender and age bucket. Every entry must be a short name
// present in the built-in catalog; all of them live on the free-tier Gemini
// provider so the selector of last resort never depends on a paid backend.
var fallbackVoices = map[string]map[string]string{
	"female":  {"young": "Leda", "adult": "Kore", "mature": "Gacrux"},
	"male":    {"young": "Puck", "adult": "Charon", "mature": "Iapetus"},
	"neutral": {"young": "Pulcherrima", "adult": "Schedar", "mature": "Vindemiatrix"},
}

// SelectFallback maps an NPC's gender and free-text age range to a voice
// short name. It is total: missing or unrecognized input lands in the neutral
// and adult buckets, and the returned name always resolves in the built-in
// catalog.
func SelectFallback(gender, ageRange string) string {
	return fallbackVoices[normalizeGender(gender)][normalizeAgeBand(ageRange)]
}

// normalizeGender buckets free-text gender into female/male/neutral.
// "female" is checked first since it contains "male" as a substring.
func normalizeGender(gender string) string {
	g := strings.ToLower(strings.TrimSpace(gender))
	switch {
	case strings.Contains(g, "female") || strings.Contains(g, "woman") || strings.Contains(g, "girl"):
		return "female"
	case strings.Contains(g, "male") || strings.Contains(g, "man") || strings.Contains(g, "boy"):
		return "male"
	default:
		return "neutral"
	}
}

// normalizeAgeBand buckets free-text age descriptions. Anything that is not
// recognizably young or old counts as adult, including the empty string.
func normalizeAgeBand(ageRange string) string {
	a := strings.ToLower(ageRange)
	switch {
	case strings.Contains(a, "young") || strings.Contains(a, "child"):
		return "young"
	case strings.Contains(a, "middle") || strings.Contains(a, "old") || strings.Contains(a, "elderly"):
		return "mature"
	default:
		return "adult"
	}
}
