package sim

import "fmt"

// PageID identifies a virtual page in a reference string.
// Page identifiers are non-negative; the parsing layer rejects anything else
// before it reaches the engine.
type PageID int

// Algorithm selects the eviction policy used by Simulate.
type Algorithm string

const (
	// AlgorithmLRU evicts the resident page unreferenced for the longest time.
	AlgorithmLRU Algorithm = "lru"
	// AlgorithmOptimal evicts the resident page whose next reference is
	// farthest in the future (or never occurs again).
	AlgorithmOptimal Algorithm = "optimal"
)

// validAlgorithms maps accepted algorithm strings.
var validAlgorithms = map[Algorithm]bool{
	AlgorithmLRU:     true,
	AlgorithmOptimal: true,
}

// ParseAlgorithm normalizes an algorithm name from user input.
// Matching is exact on the lowercase names "lru" and "optimal".
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if !validAlgorithms[a] {
		return "", fmt.Errorf("unknown algorithm %q (want %q or %q): %w",
			s, AlgorithmLRU, AlgorithmOptimal, ErrInvalidConfiguration)
	}
	return a, nil
}
