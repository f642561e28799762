// Package cleaner provides interfaces and implementations for cleaning book text.
// Cleaners are text-to-text stages that can be composed with NewChain.
package cleaner

// Cleaner transforms text into a cleaner form.
type Cleaner interface {
	// Clean transforms the input text into its cleaned form.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
