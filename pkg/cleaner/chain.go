package cleaner

import (
	"fmt"
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a new cleaner that applies multiple cleaners in sequence.
// Cleaners are applied in the order provided.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewUnicode(),
//	    book.New(book.DefaultConfig()),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence, stopping at the first error.
func (c *ChainCleaner) Clean(text string) (string, error) {
	var err error
	for _, stage := range c.cleaners {
		text, err = stage.Clean(text)
		if err != nil {
			return "", fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}
	return text, nil
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, stage := range c.cleaners {
		names[i] = stage.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
