// Package memo persists voice memos on disk: one WAV recording plus a
// YAML sidecar carrying metadata and the transcript.
package memo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no memo exists for the given ID.
var ErrNotFound = errors.New("memo not found")

// Memo is one recorded voice note. The audio file lives next to the
// sidecar as <id>.wav; Store.AudioPath derives it.
type Memo struct {
	ID         string        `yaml:"id"`
	CreatedAt  time.Time     `yaml:"created_at"`
	Duration   time.Duration `yaml:"duration"`
	Transcript string        `yaml:"transcript"`
}

// Store keeps memos in a flat directory, one .yaml + .wav pair per memo.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a memo directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("memo: creating store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

// New returns a fresh memo with a generated ID. The memo exists only
// in memory until Save.
func (s *Store) New() *Memo {
	return &Memo{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// AudioPath is where the memo's recording lives (or will live).
func (s *Store) AudioPath(id string) string {
	return filepath.Join(s.dir, id+".wav")
}

func (s *Store) sidecarPath(id string) string {
	return filepath.Join(s.dir, id+".yaml")
}

// Save writes the memo's sidecar, overwriting any previous version.
func (s *Store) Save(m *Memo) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("memo: marshaling %s: %w", m.ID, err)
	}
	if err := os.WriteFile(s.sidecarPath(m.ID), data, 0o644); err != nil {
		return fmt.Errorf("memo: writing %s: %w", m.ID, err)
	}
	return nil
}

// Get loads one memo by ID.
func (s *Store) Get(id string) (*Memo, error) {
	data, err := os.ReadFile(s.sidecarPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("memo: %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("memo: reading %s: %w", id, err)
	}

	var m Memo
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("memo: parsing %s: %w", id, err)
	}
	return &m, nil
}

// List returns all memos, newest first.
func (s *Store) List() ([]*Memo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("memo: listing store: %w", err)
	}

	var memos []*Memo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		m, err := s.Get(strings.TrimSuffix(e.Name(), ".yaml"))
		if err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}

	sort.Slice(memos, func(i, j int) bool {
		return memos[i].CreatedAt.After(memos[j].CreatedAt)
	})
	return memos, nil
}

// Delete removes a memo's sidecar and recording. Deleting a missing
// memo returns ErrNotFound; a sidecar without a recording is fine.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.sidecarPath(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("memo: %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("memo: deleting %s: %w", id, err)
	}
	if err := os.Remove(s.AudioPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("memo: deleting %s audio: %w", id, err)
	}
	return nil
}
