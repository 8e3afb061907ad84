package repository

import (
	"errors"
	"fmt"
)

// ErrIdentifierKindMismatch is returned when the store assigns an identifier
// that is not an ObjectID.
var ErrIdentifierKindMismatch = errors.New("store returned an identifier that is not an ObjectID")

// StoreError wraps a transport or driver failure.
type StoreError struct {
	Op         string
	Collection Collection
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// SerializationError is returned when an entity cannot be encoded to a document.
type SerializationError struct {
	Collection Collection
	Err        error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("could not serialize %s document: %v", e.Collection, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError is returned when a stored document cannot be decoded.
type DeserializationError struct {
	Collection Collection
	Err        error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("could not deserialize %s document: %v", e.Collection, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// ObjectNotFoundError reports a document that was expected to exist.
// Plain fetches never return it; they report absence as a nil result.
type ObjectNotFoundError struct {
	ID         string
	Collection Collection
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found in %s", e.ID, e.Collection)
}

// IsNotFound reports whether err is, or wraps, an ObjectNotFoundError.
func IsNotFound(err error) bool {
	var nf *ObjectNotFoundError
	return errors.As(err, &nf)
}
