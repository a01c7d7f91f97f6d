package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"voca/internal/domain"
	"voca/internal/pkg/filesystem"
	"voca/internal/ports"
)

// SQLiteStore persists utterance history in a SQLite database. When the
// database cannot be opened it degrades to the jsonl file store rather
// than failing the assistant.
type SQLiteStore struct {
	db         *sql.DB
	fallback   *FileStore
	maxEntries int
	mu         sync.Mutex
}

// NewSQLiteStore creates (or opens) ~/.voca/history/history.db, pruned
// to maxEntries records after each save.
func NewSQLiteStore(maxEntries int) *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".voca", "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	store := &SQLiteStore{fallback: NewFileStore(), maxEntries: maxEntries}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		store.db = nil
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS utterances (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		session_id TEXT,
		transcript TEXT,
		intent TEXT,
		kind TEXT,
		utterance TEXT,
		template_id TEXT,
		succeeded INTEGER
	);`)
	return err
}

// Save implements ports.HistoryRepository.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO utterances
		(id, timestamp, session_id, transcript, intent, kind, utterance, template_id, succeeded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.SessionID,
		record.Transcript,
		string(record.Intent),
		string(record.Kind),
		record.Utterance,
		record.TemplateID,
		boolToInt(record.Succeeded),
	)
	if err != nil {
		return err
	}
	return s.prune()
}

// prune keeps the table bounded to maxEntries, dropping oldest first.
func (s *SQLiteStore) prune() error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.Exec(`DELETE FROM utterances WHERE id NOT IN (
		SELECT id FROM utterances ORDER BY datetime(timestamp) DESC LIMIT ?
	)`, s.maxEntries)
	return err
}

// Recent implements ports.HistoryRepository.
func (s *SQLiteStore) Recent(limit int) ([]domain.HistoryRecord, error) {
	return s.query("", limit)
}

// Search implements ports.HistoryRepository.
func (s *SQLiteStore) Search(query string, limit int) ([]domain.HistoryRecord, error) {
	return s.query(query, limit)
}

func (s *SQLiteStore) query(search string, limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		if search == "" {
			return s.fallback.Recent(limit)
		}
		return s.fallback.Search(search, limit)
	}

	builder := strings.Builder{}
	builder.WriteString(`SELECT id, timestamp, session_id, transcript, intent, kind, utterance, template_id, succeeded FROM utterances`)
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE transcript LIKE ? OR utterance LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, intentStr, kindStr string
		var succeeded int
		if err := rows.Scan(&rec.ID, &ts, &rec.SessionID, &rec.Transcript, &intentStr, &kindStr, &rec.Utterance, &rec.TemplateID, &succeeded); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Intent = domain.ParseIntent(intentStr)
		rec.Kind = domain.ResponseKind(kindStr)
		rec.Succeeded = succeeded == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	_, err := s.db.Exec("DELETE FROM utterances")
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
