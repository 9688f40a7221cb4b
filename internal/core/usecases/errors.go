package usecases

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes so the HTTP layer can answer 400
// instead of 500. Wrap with fmt.Errorf("%w: ...", ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// UnsupportedProviderError is returned when a request names a provider
// that is not registered for the requested capability.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", e.Provider)
}
