package store

import (
	"log/slog"
	"slices"
)

// DefaultSeed is what a fresh store starts with when no seed is configured.
var DefaultSeed = []string{"University of the Philippines", "UST"}

// Store owns the canonical ordered list of names.
// Positions are the only identity an entry has; an index captured before a
// mutation may point somewhere else afterwards.
//
// Every read hands out a copy, and every mutation returns the list as it is
// after the call, so callers refresh explicitly instead of sharing the
// backing array.
type Store struct {
	names []string
	log   *slog.Logger
}

// New returns a store seeded with the given names, in order.
func New(log *slog.Logger, seed ...string) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{names: slices.Clone(seed), log: log}
}

// List returns a snapshot of the current names.
func (s *Store) List() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len reports how many names are stored.
func (s *Store) Len() int { return len(s.names) }

// Append adds name at the end. Validation is the caller's job.
func (s *Store) Append(name string) []string {
	s.names = append(s.names, name)
	s.log.Debug("name appended", "index", len(s.names)-1, "name", name)
	return s.List()
}

// ReplaceAt overwrites the name at index. Out of range is a silent no-op.
func (s *Store) ReplaceAt(index int, name string) []string {
	if !s.inRange(index) {
		s.log.Debug("replace ignored", "index", index, "len", len(s.names))
		return s.List()
	}
	s.names[index] = name
	s.log.Debug("name replaced", "index", index, "name", name)
	return s.List()
}

// RemoveAt deletes the name at index and shifts the rest left.
// Out of range is a silent no-op.
func (s *Store) RemoveAt(index int) []string {
	if !s.inRange(index) {
		s.log.Debug("remove ignored", "index", index, "len", len(s.names))
		return s.List()
	}
	s.names = slices.Delete(s.names, index, index+1)
	s.log.Debug("name removed", "index", index)
	return s.List()
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.names)
}
