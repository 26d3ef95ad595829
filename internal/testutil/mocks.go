// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"encoding/json"
	"time"

	"github.com/ytakei/taskwarden/internal/domain"
)

// MockClock is a test double for domain.Clock. Each call to Now advances
// the clock by Step so timestamp-ordered assertions stay deterministic.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// NewMockClock creates a MockClock starting at a fixed instant with a
// one-second step.
func NewMockClock() *MockClock {
	return &MockClock{
		NowTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Step:    time.Second,
	}
}

// Now returns the configured time and advances it by Step.
func (m *MockClock) Now() time.Time {
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// MockDocumentStore is a test double for domain.DocumentStore. It keeps the
// document in memory and deep-copies on Load/Save so tests observe the same
// isolation as the JSON file store.
type MockDocumentStore struct {
	Doc       *domain.Document
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockDocumentStore creates a store holding an empty document.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{Doc: &domain.Document{}}
}

// Load returns a deep copy of the held document.
func (m *MockDocumentStore) Load() (*domain.Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return copyDocument(m.Doc), nil
}

// Save replaces the held document with a deep copy of doc.
func (m *MockDocumentStore) Save(doc *domain.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Doc = copyDocument(doc)
	return nil
}

// Initialize is a no-op for testing.
func (m *MockDocumentStore) Initialize() error {
	return nil
}

func copyDocument(doc *domain.Document) *domain.Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var out domain.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

// MockLogger is a no-op test double for domain.Logger.
type MockLogger struct{}

// Info is a no-op.
func (MockLogger) Info(string, string) {}

// Warn is a no-op.
func (MockLogger) Warn(string, string) {}

// Error is a no-op.
func (MockLogger) Error(string, string) {}

// Debug is a no-op.
func (MockLogger) Debug(string, string) {}
