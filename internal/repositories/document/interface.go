package document

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/oraculo/internal/repositories/document Repository

import (
	"context"
)

// Repository persists whole JSON documents under logical keys
type Repository interface {
	// Load retrieves the document stored under a key
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save replaces the document stored under a key
	Save(ctx context.Context, input *SaveInput) error

	// Delete removes the document stored under a key
	Delete(ctx context.Context, input *DeleteInput) error
}
