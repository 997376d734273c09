package memstore

import (
	"fmt"
	"sort"
	"sync"

	"textstats/internal/domain"
	"textstats/internal/port"
)

var _ port.ReportStore = (*MemoryStore)(nil)

type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[string]domain.Document
	reports map[string]domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:    make(map[string]domain.Document),
		reports: make(map[string]domain.Stats),
	}
}

func (s *MemoryStore) PutDoc(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

func (s *MemoryStore) GetDoc(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, port.ErrNotFound)
	}
	return doc, nil
}

func (s *MemoryStore) DeleteDoc(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func (s *MemoryStore) GetStats(hash string) (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.reports[hash]
	if !ok {
		return domain.Stats{}, fmt.Errorf("report %s: %w", hash, port.ErrNotFound)
	}
	return stats, nil
}

func (s *MemoryStore) PutStats(hash string, stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[hash] = stats
	return nil
}

func (s *MemoryStore) CountReports() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports), nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]domain.Document)
	s.reports = make(map[string]domain.Stats)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
