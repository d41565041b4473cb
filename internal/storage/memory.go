package storage

import (
	"context"
	"sort"
	"sync"

	"cgpbench/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]model.RunRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.RunRecord)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, record model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[record.RunID] = record
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, runID string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.runs[runID]
	return record, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context, problem string) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.RunRecord, 0, len(s.runs))
	for _, record := range s.runs {
		if problem == "" || record.Problem == problem {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].RunID < records[j].RunID })
	return records, nil
}
