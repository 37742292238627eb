package sim

import "errors"

// ErrInvalidConfiguration reports simulation parameters that can never
// produce a run: a non-positive frame count or memory size, an unknown
// algorithm, a zero-length event budget. The engine fails fast and returns
// no partial results.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrMalformedInput reports user input that could not be parsed into engine
// values, such as a non-numeric or negative page identifier. It is returned
// by the parsing layer (cmd, server), never by the engine itself, which only
// sees already-parsed values.
var ErrMalformedInput = errors.New("malformed input")
