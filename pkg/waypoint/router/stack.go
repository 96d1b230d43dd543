package router

// Stack is the host's navigation state: the destinations the user can go
// back through. The top of the stack is the current destination.
// A Stack is not safe for concurrent use.
type Stack struct {
	entries []Destination
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Destination, 0),
	}
}

// Push adds a destination on top of the stack.
// Called when navigating forward to a new screen.
func (s *Stack) Push(dest Destination) {
	s.entries = append(s.entries, dest)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Destination {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Destination {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Replace swaps the whole history for dests, first entry at the bottom.
// It has the shape of a waypoint.ApplyFunc so a stack can take a resolved
// link directly.
func (s *Stack) Replace(dests []Destination) {
	s.entries = append(s.entries[:0], dests...)
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []Destination {
	out := make([]Destination, len(s.entries))
	copy(out, s.entries)
	return out
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
