// Package names prepares user supplied names for storage and comparison.
//
// Names are stored in their normalized form. Uniqueness checks compare the
// key of a name, which additionally folds case, so that "Solar", " solar "
// and "SOLAR" all refer to the same resource.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts the name to Unicode NFC, removes leading and
// trailing whitespace and collapses every internal run of whitespace
// into a single space.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(norm.NFC.String(raw)), " ")
}

// Key returns the comparison key for a name.
//
// A cases.Caser is stateful, so a new one is created for every call.
func Key(raw string) string {
	return cases.Fold().String(Normalize(raw))
}

// Equal reports whether two names refer to the same resource.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
