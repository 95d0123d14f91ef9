package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// Memory is an in-process Store. Documents keep insertion order.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]Document
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]Document)}
}

func (m *Memory) Create(_ context.Context, kind string, record any) (string, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return "", err
	}
	doc := Document{
		ID:        uuid.NewString(),
		Kind:      kind,
		Data:      data,
		CreatedAt: domain.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[kind] = append(m.docs[kind], doc)
	return doc.ID, nil
}

func (m *Memory) GetAll(_ context.Context, kind string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Document{}, m.docs[kind]...), nil
}

func (m *Memory) FilterBy(_ context.Context, kind string, filter Filter) ([]Document, error) {
	want, err := filter.normalize()
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Document{}
	for _, d := range m.docs[kind] {
		if matches(d.Data, want) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Update replaces the data of every matching document.
func (m *Memory) Update(_ context.Context, kind string, record any, filter Filter) (bool, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return false, err
	}
	want, err := filter.normalize()
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for i, d := range m.docs[kind] {
		if matches(d.Data, want) {
			m.docs[kind][i].Data = data
			found = true
		}
	}
	return found, nil
}

// Delete removes every matching document.
func (m *Memory) Delete(_ context.Context, kind string, filter Filter) (bool, error) {
	want, err := filter.normalize()
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.docs[kind]
	kept := docs[:0]
	for _, d := range docs {
		if !matches(d.Data, want) {
			kept = append(kept, d)
		}
	}
	found := len(kept) != len(docs)
	m.docs[kind] = kept
	return found, nil
}

func (m *Memory) Close() {}
