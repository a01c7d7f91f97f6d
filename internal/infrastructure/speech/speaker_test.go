package speech

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"voca/internal/domain"
)

func TestSpeakerProbeOrder(t *testing.T) {
	s := &Speaker{lookPath: func(name string) (string, error) {
		if name == "espeak" || name == "flite" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}}
	if got := s.probe(); got != "espeak" {
		t.Errorf("probe() = %q, want the first available engine", got)
	}

	s.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	if got := s.probe(); got != "" {
		t.Errorf("probe() = %q, want empty when nothing is installed", got)
	}
}

func TestSpeakerEchoWithoutEngine(t *testing.T) {
	var buf bytes.Buffer
	s := &Speaker{echo: &buf}

	if s.Available() {
		t.Fatal("Available() = true without a probed engine")
	}
	if err := s.Speak(context.Background(), "Running your code now.", domain.SpeechSettings{}); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if got := buf.String(); got != "voca: Running your code now.\n" {
		t.Errorf("echo output = %q", got)
	}
}

func TestSpeakerIgnoresEmptyUtterance(t *testing.T) {
	var buf bytes.Buffer
	s := &Speaker{echo: &buf}
	if err := s.Speak(context.Background(), "", domain.SpeechSettings{}); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty utterance was echoed: %q", buf.String())
	}
}

func TestBuildArgs(t *testing.T) {
	settings := domain.SpeechSettings{
		Rate:   170,
		Volume: 80,
		Pitch:  50,
		Voices: []string{"en-us+f3"},
	}

	cases := []struct {
		binary string
		want   []string
	}{
		{"espeak-ng", []string{"-s", "170", "-a", "160", "-p", "50", "-v", "en-us+f3", "hello"}},
		{"espeak", []string{"-s", "170", "-a", "160", "-p", "50", "-v", "en-us+f3", "hello"}},
		{"say", []string{"-r", "170", "-v", "en-us+f3", "hello"}},
		{"flite", []string{"-t", "hello"}},
	}
	for _, tc := range cases {
		if got := buildArgs(tc.binary, "hello", settings); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("buildArgs(%s) = %v, want %v", tc.binary, got, tc.want)
		}
	}
}

func TestBuildArgsWithoutVoice(t *testing.T) {
	settings := domain.SpeechSettings{Rate: 120, Volume: 50, Pitch: 10}
	got := buildArgs("espeak-ng", "hi", settings)
	joined := strings.Join(got, " ")
	if strings.Contains(joined, "-v") {
		t.Errorf("buildArgs without voices = %v, want no -v flag", got)
	}
}
