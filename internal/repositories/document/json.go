package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LoadJSON decodes the document under key into target. It reports false,
// leaving target untouched, when nothing is stored.
func LoadJSON(ctx context.Context, repo Repository, key string, target any) (bool, error) {
	output, err := repo.Load(ctx, &LoadInput{Key: key})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(output.Data, target); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return true, nil
}

// SaveJSON encodes value and stores it under key
func SaveJSON(ctx context.Context, repo Repository, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return repo.Save(ctx, &SaveInput{
		Key:  key,
		Data: data,
	})
}
