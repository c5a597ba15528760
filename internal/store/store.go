// Package store persists assessment history and adaptive weights as a single
// JSON document. The document is read wholly at load and replaced wholly at
// save; there is no incremental merge and no schema migration.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/aptiq/internal/questionbank"
)

// HistoryRecord is the immutable snapshot of one completed session.
type HistoryRecord struct {
	ID               string                  `json:"id"`
	Category         string                  `json:"category"`
	Score            int                     `json:"score"`
	CorrectCount     int                     `json:"correctCount"`
	WrongCount       int                     `json:"wrongCount"`
	UnansweredCount  int                     `json:"unansweredCount"`
	TotalQuestions   int                     `json:"totalQuestions"`
	Timestamp        time.Time               `json:"timestamp"`
	TimeTakenSeconds int                     `json:"timeTakenSeconds"`
	Answers          map[int]int             `json:"answers"`
	Questions        []questionbank.Question `json:"questions"`
}

// Document is the whole persisted state: every completed session plus the
// adaptive weight map keyed by question ID.
type Document struct {
	History []HistoryRecord    `json:"history"`
	Weights map[string]float64 `json:"weights"`
}

// DefaultDocument returns an empty document safe to use as a fallback.
func DefaultDocument() Document {
	return Document{
		History: []HistoryRecord{},
		Weights: map[string]float64{},
	}
}

// Store reads and writes the document at a fixed file path.
type Store struct {
	path string
}

// New returns a Store bound to path. The file need not exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. On any read or parse failure it returns the
// empty default document together with the error, so callers can log the
// degradation and continue from a clean slate.
func (s *Store) Load() (Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultDocument(), fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return DefaultDocument(), fmt.Errorf("parse %s: %w", s.path, err)
	}

	if doc.History == nil {
		doc.History = []HistoryRecord{}
	}
	if doc.Weights == nil {
		doc.Weights = map[string]float64{}
	}
	return doc, nil
}

// Save replaces the whole persisted document. The write goes to a temp file
// in the same directory followed by a rename, so a crash mid-write leaves the
// previous snapshot intact.
func (s *Store) Save(doc Document) error {
	if err := ensureDir(s.path); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Reset deletes the persisted document. A missing file is not an error.
func (s *Store) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}

// DefaultPath resolves the data file path in priority order:
// 1. APTIQ_DATA environment variable
// 2. $XDG_DATA_HOME/aptiq/progress.json
// 3. ~/.local/share/aptiq/progress.json
func DefaultPath() (string, error) {
	if p := os.Getenv("APTIQ_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "aptiq", "progress.json"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
