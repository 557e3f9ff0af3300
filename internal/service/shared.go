package service

import (
	"sync"

	"colorviz/internal/model"
)

// SharedResult hands the latest analysis from the polling loop to readers
// on other goroutines. One lock covers the whole result so a reader never
// sees channels, mode and name from different publications.
type SharedResult struct {
	mu        sync.Mutex
	result    model.AnalysisResult
	published bool
}

func NewSharedResult() *SharedResult {
	return &SharedResult{}
}

func (s *SharedResult) Publish(r model.AnalysisResult) {
	r.Name = model.NewColorName(string(r.Name))
	s.mu.Lock()
	s.result = r
	s.published = true
	s.mu.Unlock()
}

// Snapshot returns the latest result; ok is false until the first Publish.
func (s *SharedResult) Snapshot() (r model.AnalysisResult, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.published
}
