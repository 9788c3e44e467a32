package models

import "github.com/google/uuid"

// Entity is a record that can be stored in a collection.
type Entity interface {
	Key() uuid.UUID
}

// Draft is a create payload. Build turns it into a stored entity once the
// collection has picked an identifier for it.
type Draft[E Entity] interface {
	Build(id uuid.UUID) E
}

// Patch is a partial update payload. Apply overwrites only the fields that
// were present in the request.
type Patch[E Entity] interface {
	Apply(e *E)
}

// set overwrites dst when the patch carried a value.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
