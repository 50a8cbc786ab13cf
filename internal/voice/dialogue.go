package voice

import (
	"regexp"
	"strings"
)

// Stage directions are bracketed spans, possibly spanning multiple lines,
// consumed together with the whitespace around them.
var stageDirectionRE = regexp.MustCompile(`[ \t\r\n]*\[[^\]]*\][ \t\r\n]*`)

// ExtractDialogue removes every bracketed stage direction from raw NPC text
// and returns the spoken remainder, trimmed. Text with no brackets comes back
// unchanged apart from surrounding whitespace. An empty result means there is
// nothing to speak; the synthesis router turns that into ErrNoDialogue.
func ExtractDialogue(raw string) string {
	return strings.TrimSpace(stageDirectionRE.ReplaceAllString(raw, " "))
}
