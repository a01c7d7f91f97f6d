// Package history persists handled utterances.
package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"voca/internal/domain"
	"voca/internal/pkg/filesystem"
	"voca/internal/ports"
)

// FileStore appends utterance records to a jsonl file. It is both a
// standalone backend and the fallback when SQLite cannot be opened.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store under ~/.voca/history/history.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(filesystem.UserHomeDir(), ".voca", "history", "history.jsonl"),
	}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(record domain.HistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Recent implements ports.HistoryRepository: latest records first.
func (f *FileStore) Recent(limit int) ([]domain.HistoryRecord, error) {
	records, err := f.records()
	if err != nil {
		return nil, err
	}
	reverse(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Search implements ports.HistoryRepository with substring matching on
// the transcript and the spoken response.
func (f *FileStore) Search(query string, limit int) ([]domain.HistoryRecord, error) {
	records, err := f.records()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var matched []domain.HistoryRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Transcript), q) ||
			strings.Contains(strings.ToLower(rec.Utterance), q) {
			matched = append(matched, rec)
		}
	}
	reverse(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) records() ([]domain.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.HistoryRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func reverse(records []domain.HistoryRecord) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}

var _ ports.HistoryRepository = (*FileStore)(nil)
