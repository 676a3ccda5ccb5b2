package bondgraph

import (
	"errors"
	"fmt"
)

// Domain errors for model assembly and derivation.
var (
	// ErrUnknownKind indicates an element kind missing from the registry.
	ErrUnknownKind = errors.New("bondgraph: unknown element kind")

	// ErrUnknownElement indicates a bond endpoint that names no element.
	ErrUnknownElement = errors.New("bondgraph: unknown element")

	// ErrDuplicateElement indicates two elements with the same name.
	ErrDuplicateElement = errors.New("bondgraph: duplicate element name")

	// ErrDuplicateBond indicates two bonds with the same identifier.
	ErrDuplicateBond = errors.New("bondgraph: duplicate bond id")

	// ErrPortCount indicates an element with the wrong number of bonds.
	ErrPortCount = errors.New("bondgraph: wrong number of bonds")

	// ErrUnknownSymbol indicates a solve target that no equation mentions.
	ErrUnknownSymbol = errors.New("bondgraph: unknown symbol")
)

// ElementError wraps an error with the element it came from.
type ElementError struct {
	Element string
	Wrapped error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %s: %v", e.Element, e.Wrapped)
}

func (e *ElementError) Unwrap() error {
	return e.Wrapped
}
