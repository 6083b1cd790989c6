package types

import (
	"errors"
	"fmt"
	"strings"
)

// UnresolvedTypeError signals that a declaration references types the
// compiler cannot see yet. It is not a user error: the declaration is
// deferred to a later round instead of being reported.
type UnresolvedTypeError struct {
	Declaration DeclarationID
	Types       []string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("%s references unresolved types: %s", e.Declaration, strings.Join(e.Types, ", "))
}

// IsUnresolved reports whether err carries an UnresolvedTypeError.
func IsUnresolved(err error) bool {
	var unresolved *UnresolvedTypeError
	return errors.As(err, &unresolved)
}

// UnresolvedTypes extracts the missing type names from err, if any.
func UnresolvedTypes(err error) []string {
	var unresolved *UnresolvedTypeError
	if !errors.As(err, &unresolved) {
		return nil
	}
	return append([]string(nil), unresolved.Types...)
}
