package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aptiq/internal/questionbank"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "progress.json"))
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s := tempStore(t)

	doc, err := s.Load()
	assert.Error(t, err)
	assert.Empty(t, doc.History)
	assert.Empty(t, doc.Weights)
	assert.NotNil(t, doc.History)
	assert.NotNil(t, doc.Weights)
}

func TestLoadCorruptFileReturnsDefault(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	doc, err := s.Load()
	assert.Error(t, err)
	assert.Empty(t, doc.History)
	assert.Empty(t, doc.Weights)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := tempStore(t)

	doc := DefaultDocument()
	doc.Weights["N001"] = 1.3
	doc.History = append(doc.History, HistoryRecord{
		ID:               "abc",
		Category:         "numerical",
		Score:            75,
		CorrectCount:     15,
		WrongCount:       3,
		UnansweredCount:  2,
		TotalQuestions:   20,
		Timestamp:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TimeTakenSeconds: 540,
		Answers:          map[int]int{0: 2, 3: 1},
		Questions: []questionbank.Question{{
			ID:           "N001",
			Category:     "numerical",
			Prompt:       "p",
			Options:      []string{"a", "b"},
			CorrectIndex: 1,
		}},
	})
	require.NoError(t, s.Save(doc))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.History, 1)
	assert.Equal(t, doc.History[0], got.History[0])
	assert.InDelta(t, 1.3, got.Weights["N001"], 1e-9)
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	s := tempStore(t)

	first := DefaultDocument()
	first.Weights["A"] = 2.0
	require.NoError(t, s.Save(first))

	second := DefaultDocument()
	second.Weights["B"] = 3.0
	require.NoError(t, s.Save(second))

	got, err := s.Load()
	require.NoError(t, err)
	_, hasA := got.Weights["A"]
	assert.False(t, hasA, "old weights must not survive a save")
	assert.InDelta(t, 3.0, got.Weights["B"], 1e-9)
}

func TestSaveCreatesParentDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "deeper", "progress.json"))
	require.NoError(t, s.Save(DefaultDocument()))

	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestReset(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(DefaultDocument()))
	require.NoError(t, s.Reset())

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	// Resetting again is not an error.
	assert.NoError(t, s.Reset())
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("APTIQ_DATA", "/tmp/custom/progress.json")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/progress.json", p)
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("APTIQ_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "aptiq", "progress.json"), p)
}
