package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voca/internal/domain"
	"voca/internal/ports"
)

// extLanguages maps file extensions to the language ids the explanation
// composer speaks.
var extLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cs":   "csharp",
	".rb":   "ruby",
	".php":  "php",
	".sh":   "shell",
	".html": "html",
}

// FileState serves DocumentSnapshots from a local file, standing in for
// a live editor during one-shot CLI runs.
type FileState struct {
	path     string
	language string // overrides extension detection when set
}

// NewFileState builds a file-backed editor state.
func NewFileState(path, language string) *FileState {
	return &FileState{path: path, language: language}
}

// Snapshot implements ports.EditorState.
func (f *FileState) Snapshot(context.Context) (domain.DocumentSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return domain.DocumentSnapshot{}, fmt.Errorf("read %s: %w", f.path, err)
	}
	return domain.DocumentSnapshot{
		Text:     string(data),
		Language: f.languageID(),
		Path:     f.path,
	}, nil
}

func (f *FileState) languageID() string {
	if f.language != "" {
		return f.language
	}
	return DetectLanguage(f.path)
}

// DetectLanguage guesses a language id from the file extension,
// reporting "unknown" for anything unrecognized.
func DetectLanguage(path string) string {
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return domain.LanguageUnknown
}

// Static serves a fixed snapshot; used for stdin input and in tests.
type Static struct {
	Doc domain.DocumentSnapshot
}

// Snapshot implements ports.EditorState.
func (s Static) Snapshot(context.Context) (domain.DocumentSnapshot, error) {
	return s.Doc, nil
}

var (
	_ ports.EditorState = (*FileState)(nil)
	_ ports.EditorState = Static{}
)
