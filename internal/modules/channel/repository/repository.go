package repository

import (
	"querywizard/internal/modules/channel/domain"
)

// Repository defines the interface for channel data persistence
// This abstraction allows easy replacement of storage implementations
// (e.g., FileStorage -> PostgreSQL -> MongoDB)
type Repository interface {
	// Load returns all persisted channels in ascending order. A missing or
	// unreadable store yields an empty list, never an error, so the form
	// layer stays usable.
	Load() []domain.Channel

	// Save rewrites the full collection in one document, sorted ascending.
	Save(channels []domain.Channel) error
}
