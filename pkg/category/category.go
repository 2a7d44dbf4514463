package category

import "errors"

// ErrCreationConflict means a conflicting insert was detected but the re-read
// still found no row for the name. This is an integrity anomaly and is not
// expected in normal operation.
var ErrCreationConflict = errors.New("category row missing after conflicting insert")

// Category is a named grouping for expenses. Names are globally unique and
// matched exactly: no trimming or case folding happens anywhere in the
// registry, so "Food" and "food" are distinct categories.
type Category struct {
	ID   int
	Name string
}
