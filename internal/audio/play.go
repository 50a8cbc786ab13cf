package audio

import (
	"fmt"
	"os/exec"
)

// Play plays an audio file through the first available system player and
// blocks until playback finishes.
func Play(path string) error {
	var cmd *exec.Cmd

	switch {
	case isCommandAvailable("afplay"):
		// macOS
		cmd = exec.Command("afplay", path)
	case isCommandAvailable("aplay"):
		// Linux with ALSA
		cmd = exec.Command("aplay", "-q", path)
	case isCommandAvailable("paplay"):
		// Linux with PulseAudio
		cmd = exec.Command("paplay", path)
	case isCommandAvailable("ffplay"):
		// Cross-platform with ffmpeg
		cmd = exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path)
	default:
		return fmt.Errorf("no audio player found")
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to play audio: %w", err)
	}
	return nil
}

func isCommandAvailable(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
