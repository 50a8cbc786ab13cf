package voice

import (
	"errors"
	"strings"
)

// Sentinel errors for conditions the caller is expected to branch on.
var (
	// ErrNoDialogue means the input text contained only stage directions.
	// User-correctable: there was nothing to speak.
	ErrNoDialogue = errors.New("no spoken dialogue after removing stage directions")

	// ErrEmptyCatalog means the voice catalog was empty at call time. This is
	// a build or deploy defect, never a runtime condition, so it is fatal and
	// not retried.
	ErrEmptyCatalog = errors.New("voice catalog is empty")
)

// QuotaExceededError reports that the free-tier backend rate limit was hit.
type QuotaExceededError struct {
	Provider Provider
}

func (e *QuotaExceededError) Error() string {
	return "speech quota exhausted, try again later"
}

// SynthesisError is any other backend failure. Error() carries only the
// sanitized user-facing message; provider detail stays in Detail for logs.
type SynthesisError struct {
	Provider Provider
	// Message is shown to the user. For the free-tier backend it is a fixed
	// generic string so raw backend text never leaks; for paid providers the
	// backend error string is surfaced mostly verbatim.
	Message string
	// Detail is the raw provider diagnostic, logged but never displayed.
	Detail string
	Cause  error
}

func (e *SynthesisError) Error() string {
	if e.Message == "" {
		return "unable to generate audio"
	}
	return "unable to generate audio: " + e.Message
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

// criticalPatterns mark the failure classes worth reporting to telemetry:
// quota exhaustion, throttling and generic backend/API outages.
var criticalPatterns = []string{
	"quota",
	"429",
	"503",
	"too many requests",
	"unavailable",
	"api",
}

// isCritical decides whether a synthesis failure gets reported to the
// telemetry collaborator.
func isCritical(err error) bool {
	var quota *QuotaExceededError
	if errors.As(err, &quota) {
		return true
	}
	var synth *SynthesisError
	if !errors.As(err, &synth) {
		return false
	}
	probe := strings.ToLower(synth.Message + " " + synth.Detail)
	for _, p := range criticalPatterns {
		if strings.Contains(probe, p) {
			return true
		}
	}
	return false
}
