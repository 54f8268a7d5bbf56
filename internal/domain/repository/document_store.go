// Package repository defines the persistence contracts used by the
// use cases. The infra layer provides the concrete implementations.
package repository

import (
	"context"

	"boutique/internal/domain/entity"
)

// DocumentStore owns the persisted document. Load always returns a full
// fresh snapshot; Save overwrites durable storage with the full updated
// snapshot. There are no partial writes. Concurrent mutators race with
// last-writer-wins semantics at whole-document granularity; this is an
// accepted property of the design, not a bug to compensate for here.
type DocumentStore interface {
	Load(ctx context.Context) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
}
