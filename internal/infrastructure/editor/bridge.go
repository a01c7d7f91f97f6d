// Package editor adapts the editor collaborators: a websocket bridge to
// a live editor extension and a file-backed stand-in for one-shot runs.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"voca/internal/domain"
	"voca/internal/ports"
)

// Envelope kinds understood by the editor extension.
const (
	kindDocumentRequest = "document.request"
	kindDocument        = "document"
	kindCommand         = "command"
	kindAck             = "ack"
	kindSnippet         = "snippet"
	kindListenStart     = "listen.start"
	kindTranscript      = "transcript"
	kindError           = "error"
)

type envelope struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Kind      string `json:"kind"`
	Content   string `json:"content,omitempty"`
	Language  string `json:"language,omitempty"`
	Selection string `json:"selection,omitempty"`
	Path      string `json:"path,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Bridge is a websocket client speaking the voca editor protocol: JSON
// envelopes exchanged with the editor extension. It serves the editor
// state, command executor, snippet notifier and transcript source ports
// over one connection. One request is in flight at a time.
type Bridge struct {
	conn *websocket.Conn
	name string
	mu   sync.Mutex
}

// Dial connects to the editor extension.
func Dial(wsURL, name string) (*Bridge, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("parse bridge url: %w", err)
	}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial editor bridge: %w", err)
	}
	return &Bridge{conn: conn, name: name}, nil
}

// Close tears the connection down.
func (b *Bridge) Close() error {
	return b.conn.Close()
}

// Snapshot implements ports.EditorState.
func (b *Bridge) Snapshot(ctx context.Context) (domain.DocumentSnapshot, error) {
	reply, err := b.roundTrip(ctx, envelope{Kind: kindDocumentRequest}, kindDocument)
	if err != nil {
		return domain.DocumentSnapshot{}, err
	}
	language := reply.Language
	if language == "" {
		language = domain.LanguageUnknown
	}
	return domain.DocumentSnapshot{
		Text:      reply.Content,
		Selection: reply.Selection,
		Language:  language,
		Path:      reply.Path,
	}, nil
}

// Execute implements ports.CommandExecutor. The editor owns the mapping
// from command ids to its own actions ("clear" is select-all plus cut).
func (b *Bridge) Execute(ctx context.Context, commandID string) error {
	reply, err := b.roundTrip(ctx, envelope{Kind: kindCommand, Content: commandID}, kindAck)
	if err != nil {
		return err
	}
	if reply.Reason != "" {
		return fmt.Errorf("editor rejected %s: %s", commandID, reply.Reason)
	}
	return nil
}

// NotifySnippet implements ports.SnippetNotifier. Fire-and-forget: the
// editor is not required to act, so no reply is awaited.
func (b *Bridge) NotifySnippet(_ context.Context, snippet domain.GeneratedSnippet) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(envelope{Kind: kindSnippet, Content: snippet.Code, Language: "javascript"})
}

// Supported implements ports.TranscriptSource; a connected bridge can
// always ask the editor side whether capture works, so the capability
// answer comes back as a capture error when it does not.
func (b *Bridge) Supported() bool {
	return b.conn != nil
}

// Capture implements ports.TranscriptSource: it asks the editor side to
// start a capture session and waits for at most one transcript.
func (b *Bridge) Capture(ctx context.Context) (string, error) {
	reply, err := b.roundTrip(ctx, envelope{Kind: kindListenStart}, kindTranscript)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

func (b *Bridge) roundTrip(ctx context.Context, req envelope, wantKind string) (envelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = b.conn.SetReadDeadline(deadline)
		defer func() { _ = b.conn.SetReadDeadline(time.Time{}) }()
	}

	if err := b.write(req); err != nil {
		return envelope{}, err
	}

	for {
		_, data, err := b.conn.ReadMessage()
		if err != nil {
			return envelope{}, fmt.Errorf("bridge read: %w", err)
		}
		var reply envelope
		if err := json.Unmarshal(data, &reply); err != nil {
			return envelope{}, fmt.Errorf("bridge decode: %w", err)
		}
		switch reply.Kind {
		case wantKind:
			return reply, nil
		case kindError:
			return envelope{}, &domain.CaptureError{Reason: reply.Reason}
		default:
			// Unsolicited envelope between request and reply; skip it.
		}
	}
}

func (b *Bridge) write(msg envelope) error {
	msg.From = b.name
	msg.To = "editor"
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

var (
	_ ports.EditorState      = (*Bridge)(nil)
	_ ports.CommandExecutor  = (*Bridge)(nil)
	_ ports.SnippetNotifier  = (*Bridge)(nil)
	_ ports.TranscriptSource = (*Bridge)(nil)
)
