// Package identity provides sequential ID generation for teamtrack entities.
package identity

import "sync/atomic"

// Sequence hands out monotonically increasing int64 identifiers starting
// at zero. Identifiers are never reused.
//
// A Sequence is owned by a Team and scoped to one entity kind, so two
// teams (or two kinds) never share a counter. The zero value is ready to
// use. Sequence must not be copied after first use.
type Sequence struct {
	next atomic.Int64
}

// Next returns the next identifier in the sequence.
//
// Returns:
//   - int64: The next identifier, starting from 0
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

// Current returns the number of identifiers handed out so far.
func (s *Sequence) Current() int64 {
	return s.next.Load()
}
