package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{
		records: map[string]Record{},
		now:     time.Now,
	}
}

func (m *memoryStore) Put(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.Modified = m.now().UTC()
	m.records[r.ID] = r

	return nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}

	return r, nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}

	delete(m.records, id)

	return nil
}

func (m *memoryStore) List(ctx context.Context, entityType string, offset, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []Record{}

	for _, r := range m.records {
		if entityType == "" || r.Type == entityType {
			result = append(result, r)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return page(result, offset, limit), nil
}

func (m *memoryStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64

	for id, r := range m.records {
		if r.Modified.Before(before) {
			delete(m.records, id)
			count++
		}
	}

	return count, nil
}

func (m *memoryStore) Close() {}

func page(records []Record, offset, limit int) []Record {
	if offset < 0 {
		offset = 0
	}

	if offset >= len(records) {
		return []Record{}
	}

	records = records[offset:]

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	return records
}
