package idgen

import "github.com/google/uuid"

// NewFunc produces identifiers used in temporary file names. Tests replace it
// to get predictable names.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new unique identifier.
func New() string { return NewFunc() }
