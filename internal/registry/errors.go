package registry

import (
	"errors"
	"fmt"
)

// ErrBuilderFrozen is the panic value when a Builder is used after Build.
var ErrBuilderFrozen = errors.New("registry builder used after Build")

// CatalogDefectError reports container-of names that are not type parameters
// of the type they were registered for.
type CatalogDefectError struct {
	Type     string   // Qualified type name
	Invalid  []string // Requested names that are not declared, in request order
	Declared []string // Names the type actually declares, in declaration order
}

// Error implements the error interface.
func (e *CatalogDefectError) Error() string {
	return fmt.Sprintf("for %s, please update the type parameter(s) from %v to %v",
		e.Type, e.Invalid, e.Declared)
}
