package speech

import (
	"bufio"
	"context"
	"io"
	"strings"

	"voca/internal/ports"
)

// TypedSource reads typed transcripts from a reader, one per line. It is
// the accessibility fallback when no microphone bridge is attached: the
// user types what they would have spoken.
type TypedSource struct {
	scanner *bufio.Scanner
}

// NewTypedSource wraps the reader, usually os.Stdin.
func NewTypedSource(r io.Reader) *TypedSource {
	return &TypedSource{scanner: bufio.NewScanner(r)}
}

// Supported implements ports.TranscriptSource; typing always works.
func (t *TypedSource) Supported() bool {
	return true
}

// Capture implements ports.TranscriptSource. It blocks for one line;
// io.EOF ends the listen loop. Cancellation is checked up front only —
// a blocked terminal read cannot be interrupted portably.
func (t *TypedSource) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.scanner.Text()), nil
}

var _ ports.TranscriptSource = (*TypedSource)(nil)
