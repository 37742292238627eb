package cmd

import (
	"fmt"
	"strconv"
	"strings"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// ParseReferenceString turns user-entered text like "1, 2,3,2,4" into a
// page reference string. Page identifiers must be non-negative integers;
// anything else is reported as a malformed-input error naming the offending
// token. An all-whitespace input yields an empty reference string.
func ParseReferenceString(s string) ([]sim.PageID, error) {
	if strings.TrimSpace(s) == "" {
		return []sim.PageID{}, nil
	}

	parts := strings.Split(s, ",")
	refs := make([]sim.PageID, 0, len(parts))
	for i, part := range parts {
		tok := strings.TrimSpace(part)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d (%q) is not an integer: %w", i, tok, sim.ErrMalformedInput)
		}
		if n < 0 {
			return nil, fmt.Errorf("token %d (%d) is negative: %w", i, n, sim.ErrMalformedInput)
		}
		refs = append(refs, sim.PageID(n))
	}
	return refs, nil
}
