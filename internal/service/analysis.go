package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"colorviz/internal/model"
	"colorviz/internal/storage"
	"colorviz/internal/vision"
	"colorviz/internal/ws"
)

// Display is the local screen the loop keeps in sync with the menu and the
// latest analysis.
type Display interface {
	ShowMenu(items []string, cursor int)
	ShowAnalysis(mode, name string, c model.RGB)
}

type AnalysisService struct {
	pipeline     vision.Pipeline
	acquire      vision.Acquirer
	shared       *SharedResult
	menu         *Menu
	display      Display
	store        *storage.Store
	hub          *ws.Hub
	pollInterval time.Duration

	// loop goroutine only
	lastRecorded *model.AnalysisResult
}

func NewAnalysisService(
	pipeline vision.Pipeline,
	acquire vision.Acquirer,
	shared *SharedResult,
	menu *Menu,
	display Display,
	store *storage.Store,
	hub *ws.Hub,
	pollInterval time.Duration,
) *AnalysisService {
	return &AnalysisService{
		pipeline:     pipeline,
		acquire:      acquire,
		shared:       shared,
		menu:         menu,
		display:      display,
		store:        store,
		hub:          hub,
		pollInterval: pollInterval,
	}
}

// Restore republishes the last stored result and reopens the analysis
// screen for the last selected variant.
func (s *AnalysisService) Restore() {
	if mode := s.store.Mode(); mode != model.VariantNormal {
		if err := s.menu.Enter(mode); err != nil {
			log.Printf("restore mode: %v", err)
		}
	}
	if last := s.store.LastResult(); last != nil {
		r := last.Result()
		s.shared.Publish(r)
		s.lastRecorded = &r
	}
	s.render(s.menu.Snapshot())
}

// Run polls until ctx is done. Cancellation is only observed between
// iterations; a stalled acquisition blocks the loop.
func (s *AnalysisService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()
	for {
		if err := s.Step(); err != nil {
			log.Printf("analysis step: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Step runs one iteration. On the menu screen it only redraws the menu. On
// the analysis screen it reads the sensor, publishes the result and records
// it when it differs from the previous one. A failed acquisition leaves the
// last good result published.
func (s *AnalysisService) Step() error {
	st := s.menu.Snapshot()
	if st.Screen != ScreenAnalysis {
		s.render(st)
		return nil
	}
	res, err := s.pipeline.Analyze(s.acquire, st.Variant)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	s.shared.Publish(res)
	// the menu may have moved on while the sensor was sampling
	if now := s.menu.Snapshot(); now.Screen == ScreenAnalysis && now.Variant == res.Variant {
		s.display.ShowAnalysis(res.Variant.String(), res.Name.String(), res.Color)
	}
	if s.lastRecorded != nil && sameReading(*s.lastRecorded, res) {
		return nil
	}
	s.lastRecorded = &res
	return s.record(res)
}

// sameReading ignores Sensed, which moves with sensor noise even when the
// matched color does not.
func sameReading(a, b model.AnalysisResult) bool {
	return a.Name == b.Name && a.Color == b.Color && a.Variant == b.Variant
}

// ApplyMenu feeds a menu action from any input source and persists the
// selected variant.
func (s *AnalysisService) ApplyMenu(a MenuAction) (MenuState, error) {
	st, err := s.menu.Apply(a)
	if err != nil {
		return st, err
	}
	if a == ActionSelect || a == ActionBack {
		if err := s.store.SetMode(st.Variant); err != nil {
			return st, fmt.Errorf("persist mode: %w", err)
		}
	}
	s.render(st)
	s.hub.BroadcastEvent(model.Event{ID: uuid.NewString(), Type: "menu.updated", Payload: st, CreatedAt: time.Now().UnixMilli()})
	return st, nil
}

// SelectVariant opens the analysis screen for v directly.
func (s *AnalysisService) SelectVariant(v model.Variant) (MenuState, error) {
	if err := s.menu.Enter(v); err != nil {
		return s.menu.Snapshot(), err
	}
	st := s.menu.Snapshot()
	if err := s.store.SetMode(v); err != nil {
		return st, fmt.Errorf("persist mode: %w", err)
	}
	s.hub.BroadcastEvent(model.Event{ID: uuid.NewString(), Type: "menu.updated", Payload: st, CreatedAt: time.Now().UnixMilli()})
	return st, nil
}

func (s *AnalysisService) Shared() *SharedResult {
	return s.shared
}

func (s *AnalysisService) Menu() *Menu {
	return s.menu
}

func (s *AnalysisService) Pipeline() vision.Pipeline {
	return s.pipeline
}

func (s *AnalysisService) render(st MenuState) {
	if st.Screen == ScreenMenu {
		s.display.ShowMenu(st.Items, st.Cursor)
		return
	}
	if r, ok := s.shared.Snapshot(); ok && r.Variant == st.Variant {
		s.display.ShowAnalysis(r.Variant.String(), r.Name.String(), r.Color)
	}
}

func (s *AnalysisService) record(res model.AnalysisResult) error {
	stored := model.StoredResult{
		ID:        uuid.NewString(),
		Name:      res.Name.String(),
		Color:     res.Color,
		Sensed:    res.Sensed,
		Variant:   res.Variant,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.store.RecordResult(stored); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	s.hub.BroadcastEvent(model.Event{ID: stored.ID, Type: "analysis.published", Payload: stored, CreatedAt: stored.CreatedAt})
	return nil
}
