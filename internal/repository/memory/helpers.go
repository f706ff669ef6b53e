package memory

import (
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"

	"github.com/google/uuid"
)

// findOne returns a copy of the first item matching match, or nil.
func findOne[T any](items []T, match func(*T) bool) *T {
	for i := range items {
		if match(&items[i]) {
			found := items[i]
			return &found
		}
	}
	return nil
}

// findAll returns copies of every item matching match. The result is never nil.
func findAll[T any](items []T, match func(*T) bool) []T {
	result := make([]T, 0)
	for i := range items {
		if match(&items[i]) {
			result = append(result, items[i])
		}
	}
	return result
}

// replaceOne overwrites the first item matching match with value.
func replaceOne[T any](items []T, match func(*T) bool, value T) error {
	for i := range items {
		if match(&items[i]) {
			items[i] = value
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created != nil && created.IsZero() {
		*created = now
	}
	if updated != nil {
		*updated = now
	}
}
