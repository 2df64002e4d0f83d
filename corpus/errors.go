package corpus

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnsupportedFormat indicates a file matched no parser; the file is
	// skipped and the run continues.
	ErrUnsupportedFormat = errors.New("corpus: unsupported file format")

	// ErrMalformedDictionary indicates a tabular file lacks the required
	// headword or definition column; the file is skipped and the run continues.
	ErrMalformedDictionary = errors.New("corpus: malformed dictionary file")

	// ErrInputDirNotFound indicates the input directory is missing or
	// unreadable. This is the only fatal error; no partial output is written.
	ErrInputDirNotFound = errors.New("corpus: input directory not found")
)
