// Package speech adapts the audio collaborators: an exec-based
// text-to-speech engine and transcript sources for typed input.
package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"voca/internal/domain"
	"voca/internal/ports"
)

// Engines probed on PATH, in preference order.
var engines = []string{"espeak-ng", "espeak", "say", "flite"}

// Speaker shells out to the first text-to-speech engine found on PATH.
// Without one it degrades to echoing utterances to the terminal, which
// keeps the assistant usable on machines without audio.
type Speaker struct {
	binary string
	echo   io.Writer
	// lookPath is swapped in tests.
	lookPath func(string) (string, error)
}

// NewSpeaker probes for a TTS engine. A nil echo writer disables the
// terminal echo.
func NewSpeaker(echo io.Writer) *Speaker {
	s := &Speaker{echo: echo, lookPath: exec.LookPath}
	s.binary = s.probe()
	return s
}

func (s *Speaker) probe() string {
	for _, engine := range engines {
		if _, err := s.lookPath(engine); err == nil {
			return engine
		}
	}
	return ""
}

// Available implements ports.SpeechOutput.
func (s *Speaker) Available() bool {
	return s.binary != ""
}

// Engine reports the probed TTS binary, empty when none was found.
func (s *Speaker) Engine() string {
	return s.binary
}

// Speak implements ports.SpeechOutput.
func (s *Speaker) Speak(ctx context.Context, utterance string, settings domain.SpeechSettings) error {
	if utterance == "" {
		return nil
	}
	if s.echo != nil {
		fmt.Fprintln(s.echo, "voca:", utterance)
	}
	if s.binary == "" {
		return nil
	}

	cmd := exec.CommandContext(ctx, s.binary, buildArgs(s.binary, utterance, settings)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.binary, err)
	}
	return nil
}

// buildArgs translates the speech settings into each engine's flags.
func buildArgs(binary, utterance string, settings domain.SpeechSettings) []string {
	switch binary {
	case "espeak-ng", "espeak":
		args := []string{
			"-s", strconv.Itoa(settings.Rate),
			"-a", strconv.Itoa(settings.Volume * 2), // espeak amplitude is 0-200
			"-p", strconv.Itoa(settings.Pitch),
		}
		if len(settings.Voices) > 0 {
			args = append(args, "-v", settings.Voices[0])
		}
		return append(args, utterance)
	case "say":
		args := []string{"-r", strconv.Itoa(settings.Rate)}
		if len(settings.Voices) > 0 {
			args = append(args, "-v", settings.Voices[0])
		}
		return append(args, utterance)
	default:
		return []string{"-t", utterance}
	}
}

var _ ports.SpeechOutput = (*Speaker)(nil)
