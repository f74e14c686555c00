package mazesprite

import (
	"fmt"
	"strings"
)

// LookupError is the panic value raised when code asks for an atlas ID or
// animation name that was never registered. Completeness checks at load time
// are meant to rule this out, so hitting one is an authoring or programming
// defect.
type LookupError struct {
	Kind string // "atlas ID", "animation", ...
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("mazesprite: unknown %s %q", e.Kind, e.Name)
}

// IncompleteAtlasError lists every declared atlas ID without a registration.
type IncompleteAtlasError struct {
	Missing []string
}

func (e *IncompleteAtlasError) Error() string {
	return fmt.Sprintf("mazesprite: atlas incomplete, %d missing ID(s): %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}
