package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"colorviz/internal/model"
)

const DefaultHistoryLimit = 50

type Store struct {
	path         string
	historyLimit int
	mu           sync.RWMutex
	state        model.StoredState
}

func NewStore(path string, historyLimit int) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Store{path: path, historyLimit: historyLimit}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.state = defaultState()
			return s.saveLocked()
		}
		return err
	}
	if len(b) == 0 {
		s.state = defaultState()
		return s.saveLocked()
	}

	var state model.StoredState
	if err := json.Unmarshal(b, &state); err != nil {
		return err
	}
	s.mergeDefaults(&state)
	s.state = state
	return nil
}

func defaultState() model.StoredState {
	return model.StoredState{
		Mode:      model.VariantNormal,
		History:   []model.StoredResult{},
		CreatedAt: time.Now().UTC(),
	}
}

func (s *Store) mergeDefaults(state *model.StoredState) {
	if state.History == nil {
		state.History = []model.StoredResult{}
	}
	if len(state.History) > s.historyLimit {
		state.History = state.History[len(state.History)-s.historyLimit:]
	}
	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now().UTC()
	}
}

func (s *Store) saveLocked() error {
	s.state.LastUpdatedUnixMS = time.Now().UnixMilli()
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *Store) SetMode(v model.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Mode = v
	return s.saveLocked()
}

func (s *Store) Mode() model.Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Mode
}

// RecordResult makes r the last result and appends it to the bounded history.
func (s *Store) RecordResult(r model.StoredResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := r
	s.state.LastResult = &last
	s.state.History = append(s.state.History, r)
	if over := len(s.state.History) - s.historyLimit; over > 0 {
		s.state.History = append([]model.StoredResult(nil), s.state.History[over:]...)
	}
	return s.saveLocked()
}

func (s *Store) LastResult() *model.StoredResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LastResult == nil {
		return nil
	}
	r := *s.state.LastResult
	return &r
}

// History returns stored results, oldest first.
func (s *Store) History() []model.StoredResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StoredResult, len(s.state.History))
	copy(out, s.state.History)
	return out
}
