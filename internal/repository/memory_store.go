package repository

import (
	"sync"

	"staff-attendance-backend/internal/model"
)

// MemoryStore is an in-memory RecordStore. The engine only sees the RecordStore
// interface, so tests drive the sweep and the gate against this instead of MySQL.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]map[uint]model.AttendanceRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: make(map[string]map[uint]model.AttendanceRecord)}
}

func (s *MemoryStore) ReadDay(date string) (map[uint]model.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uint]model.AttendanceRecord, len(s.days[date]))
	for id, rec := range s.days[date] {
		out[id] = rec
	}
	return out, nil
}

func (s *MemoryStore) WriteDay(date string, records map[uint]model.AttendanceRecord) error {
	cp := make(map[uint]model.AttendanceRecord, len(records))
	for id, rec := range records {
		cp[id] = rec
	}
	s.mu.Lock()
	s.days[date] = cp
	s.mu.Unlock()
	return nil
}
