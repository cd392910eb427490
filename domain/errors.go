package domain

import "errors"

// Dataset and scoring failure taxonomy. Parsing/IO errors are terminal
// for a request; insufficient scored results are recovered via the
// selector's fallback path and never surface as one of these.
var (
	ErrDataNotFound   = errors.New("dataset file not found at any candidate path")
	ErrEmptyDataset   = errors.New("dataset file contains no data rows")
	ErrNoValidRegions = errors.New("no region rows with a resolvable name")
)
