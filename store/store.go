// Package store holds the most recent analysis run in memory. Detail and
// summary endpoints read from here, so one run must stay available between
// requests.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-reviewlens/types"
)

var ErrNoAnalysis = errors.New("no analysis has been run yet")

// AnalysisRun is one completed analysis: the products, their per-product
// analyses and the cross-product summary.
type AnalysisRun struct {
	RunID      string                       `json:"runId"`
	AnalyzedAt time.Time                    `json:"analyzedAt"`
	Products   []types.ProductInfo          `json:"products"`
	Analyses   []types.ProductAnalysisEntry `json:"analyses"`
	Summary    types.CrossSummary           `json:"summary"`
}

// Store keeps the latest run. New runs replace the previous one.
type Store struct {
	mu  sync.RWMutex
	run *AnalysisRun
}

func New() *Store {
	return &Store{}
}

// Save stores a new run and returns it stamped with a fresh ID.
func (s *Store) Save(products []types.ProductInfo, analyses []types.ProductAnalysisEntry, summary types.CrossSummary) *AnalysisRun {
	run := &AnalysisRun{
		RunID:      uuid.NewString(),
		AnalyzedAt: time.Now().UTC(),
		Products:   products,
		Analyses:   analyses,
		Summary:    summary,
	}

	s.mu.Lock()
	s.run = run
	s.mu.Unlock()
	return run
}

// Latest returns the current run, or ErrNoAnalysis when nothing has been
// analyzed yet.
func (s *Store) Latest() (*AnalysisRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.run == nil {
		return nil, ErrNoAnalysis
	}
	return s.run, nil
}

// ProductEntry returns one product's analysis by its position in the run.
func (s *Store) ProductEntry(index int) (*types.ProductAnalysisEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.run == nil {
		return nil, ErrNoAnalysis
	}
	if index < 0 || index >= len(s.run.Analyses) {
		return nil, errors.New("product index out of range")
	}
	entry := s.run.Analyses[index]
	return &entry, nil
}
