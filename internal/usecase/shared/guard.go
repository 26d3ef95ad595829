// Package shared provides shared utilities for use cases.
package shared

import (
	"encoding/json"
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
)

// Mutate runs one whole-document read-modify-write cycle: load the persisted
// document, apply fn to it in memory, and save it back. When fn returns an
// error nothing is persisted.
//
// A best-effort snapshot of the loaded document is taken up front. If fn
// panics, the snapshot is written back and the panic is converted into an
// error, so a mutation that died half-way cannot leave a partial document
// behind. Snapshot failure is not fatal: the operation proceeds without a
// safety net, which is logged.
func Mutate(store domain.DocumentStore, logger domain.Logger, fn func(doc *domain.Document) error) (err error) {
	doc, loadErr := store.Load()
	if loadErr != nil {
		return fmt.Errorf("load document: %w", loadErr)
	}

	snapshot := snapshotOf(doc, logger)

	defer func() {
		if r := recover(); r != nil {
			restore(store, logger, snapshot)
			err = fmt.Errorf("internal error during mutation: %v", r)
		}
	}()

	if err := fn(doc); err != nil {
		return err
	}

	if err := store.Save(doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Load runs a read-only cycle: load the document and apply fn to it.
func Load(store domain.DocumentStore, fn func(doc *domain.Document) error) error {
	doc, err := store.Load()
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	return fn(doc)
}

// snapshotOf deep-copies the document via a JSON round trip.
// Returns nil when the copy fails.
func snapshotOf(doc *domain.Document, logger domain.Logger) *domain.Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		warn(logger, fmt.Sprintf("snapshot failed, proceeding without rollback: %v", err))
		return nil
	}
	var clone domain.Document
	if err := json.Unmarshal(raw, &clone); err != nil {
		warn(logger, fmt.Sprintf("snapshot failed, proceeding without rollback: %v", err))
		return nil
	}
	return &clone
}

// restore writes the snapshot back after a failed mutation.
// Without a snapshot there is nothing to do.
func restore(store domain.DocumentStore, logger domain.Logger, snapshot *domain.Document) {
	if snapshot == nil {
		warn(logger, "no snapshot available, skipping rollback")
		return
	}
	if err := store.Save(snapshot); err != nil {
		warn(logger, fmt.Sprintf("rollback failed: %v", err))
	}
}

func warn(logger domain.Logger, msg string) {
	if logger != nil {
		logger.Warn("store", msg)
	}
}
