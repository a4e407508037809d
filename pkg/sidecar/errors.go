package sidecar

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrUnknownCategory indicates a top-level metadata key outside the fixed category set
	ErrUnknownCategory = errors.New("unknown sidecar category")

	// ErrMalformedMetadata indicates a field name that cannot serve as an XML element name
	ErrMalformedMetadata = errors.New("malformed metadata")

	// ErrNoDocument indicates serialization was requested on a nil document
	ErrNoDocument = errors.New("no document built")

	// ErrSinkRequired indicates a service was constructed without a transfer sink
	ErrSinkRequired = errors.New("transfer sink is required")
)

// MetadataError reports which category or field a metadata validation failed on
type MetadataError struct {
	Category Category
	Field    string
	Err      error
}

func (e *MetadataError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("metadata field %q in category %q: %v", e.Field, e.Category, e.Err)
	}
	return fmt.Sprintf("metadata category %q: %v", e.Category, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
