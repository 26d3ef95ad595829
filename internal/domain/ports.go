package domain

import "time"

// DocumentStore persists the whole dataset as a single document. Operations
// load the document at the start of a call and save it whole at the end.
// There is no cross-process locking: concurrent writers are last-writer-wins.
// A single active caller per document is assumed.
type DocumentStore interface {
	// Load reads the persisted document. A missing or unparsable file
	// yields an empty document, not an error.
	Load() (*Document, error)

	// Save writes the document, replacing whatever was persisted before.
	Save(doc *Document) error
}

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// Logger records operational events.
type Logger interface {
	// Info logs an info message under a category.
	Info(category, msg string)

	// Warn logs a warning message under a category.
	Warn(category, msg string)

	// Error logs an error message under a category.
	Error(category, msg string)

	// Debug logs a debug message under a category.
	Debug(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
