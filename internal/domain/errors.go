// Package domain holds the error taxonomy and value types shared by all
// services. Handlers translate these sentinels to HTTP statuses; services
// wrap them with context via fmt.Errorf("%w: …").
package domain

import "errors"

var (
	// ErrConflict signals a uniqueness violation: duplicate attribute code,
	// duplicate (attribute, value) option, duplicate (part_number,
	// effective_date) price row, or re-linking a variant to a new parent.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is the generic dangling-reference error for path lookups.
	ErrNotFound = errors.New("not found")

	// ErrUnknownAttribute is returned when a value references an attribute
	// that was never defined in the schema registry.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownProduct is returned when an operation references a part
	// number with no registered product.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrTypeMismatch is returned when a raw value cannot be coerced into
	// the attribute's declared data type, or when an option is defined on a
	// non-enum attribute.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidOption is returned when an enum value does not resolve to a
	// registered option of the owning attribute.
	ErrInvalidOption = errors.New("invalid option")

	// ErrSelfReference is returned when a variant link names the same part
	// number on both sides.
	ErrSelfReference = errors.New("self reference")
)
