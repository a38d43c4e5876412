package document

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// memoryRepository keeps documents in process memory
type memoryRepository struct {
	documents map[string]json.RawMessage
	mu        sync.RWMutex
}

// NewMemory creates an empty in-memory document repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		documents: make(map[string]json.RawMessage),
	}
}

// Load retrieves a copy of a stored document
func (r *memoryRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.documents[input.Key]
	if !ok {
		return nil, ErrNotFound
	}

	return &LoadOutput{
		Data: append(json.RawMessage(nil), data...),
	}, nil
}

// Save stores a copy of the document
func (r *memoryRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents[input.Key] = append(json.RawMessage(nil), input.Data...)
	return nil
}

// Delete removes a document
func (r *memoryRepository) Delete(_ context.Context, input *DeleteInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.documents, input.Key)
	return nil
}
