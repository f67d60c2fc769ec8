// Package store defines the Record Store contracts owned by the persistence
// layer. Two interchangeable backends exist: a whole-snapshot JSON file
// store and a MongoDB collection store, selected at startup by
// configuration.
package store

import (
	"context"

	"github.com/Zharokiecoder/GITEX2/types"
)

// Store provides a unified interface for all data operations.
type Store interface {
	Registrations() RegistrationStore
	Feedbacks() FeedbackStore

	// Ping reports storage connectivity for health checks.
	Ping(ctx context.Context) error

	// Backend names the active implementation ("file" or "mongo").
	Backend() string

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// RegistrationStore handles registration records. The store assigns id and
// timestamp at creation; records are never updated or deleted afterwards.
// Read methods return copies, never aliases of store-owned state.
type RegistrationStore interface {
	Create(ctx context.Context, reg *types.Registration) (string, error)
	List(ctx context.Context) ([]*types.Registration, error)
	FindByEmail(ctx context.Context, normalizedEmail string) ([]*types.Registration, error)
	Count(ctx context.Context) (int, error)
}

// FeedbackStore handles feedback records.
type FeedbackStore interface {
	Create(ctx context.Context, fb *types.Feedback) (string, error)
	List(ctx context.Context) ([]*types.Feedback, error)
	Count(ctx context.Context) (int, error)
}
