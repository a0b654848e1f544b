package turbopath

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Set is a collection of paths where members are compared with Equal, so
// "a/b", `a\b` and "a/x/../b" occupy a single slot. The first spelling
// added is the one kept.
//
// Set is not safe for concurrent mutation.
type Set struct {
	keys  mapset.Set
	paths map[string]FilePath
}

// NewSet returns a set holding paths.
func NewSet(paths ...FilePath) *Set {
	s := &Set{
		keys:  mapset.NewThreadUnsafeSet(),
		paths: make(map[string]FilePath, len(paths)),
	}
	for _, path := range paths {
		s.Add(path)
	}
	return s
}

// Add inserts path and reports whether it was not already present.
func (s *Set) Add(path FilePath) bool {
	key := path.Hashcode()
	if !s.keys.Add(key) {
		return false
	}
	s.paths[key] = path
	return true
}

// Contains reports whether a path equal to path is in the set.
func (s *Set) Contains(path FilePath) bool {
	return s.keys.Contains(path.Hashcode())
}

// Remove deletes the member equal to path, if any.
func (s *Set) Remove(path FilePath) {
	key := path.Hashcode()
	s.keys.Remove(key)
	delete(s.paths, key)
}

// Len is the number of members.
func (s *Set) Len() int {
	return s.keys.Cardinality()
}

// Union returns a set with the members of both sets. Where both hold an
// equal path, the spelling from s wins.
func (s *Set) Union(other *Set) *Set {
	return s.derive(s.keys.Union(other.keys), other)
}

// Intersect returns a set with the members present in both sets.
func (s *Set) Intersect(other *Set) *Set {
	return s.derive(s.keys.Intersect(other.keys), other)
}

// Difference returns a set with the members of s that other lacks.
func (s *Set) Difference(other *Set) *Set {
	return s.derive(s.keys.Difference(other.keys), other)
}

func (s *Set) derive(keys mapset.Set, other *Set) *Set {
	result := &Set{
		keys:  keys,
		paths: make(map[string]FilePath, keys.Cardinality()),
	}
	for _, item := range keys.ToSlice() {
		key := item.(string)
		if path, ok := s.paths[key]; ok {
			result.paths[key] = path
		} else {
			result.paths[key] = other.paths[key]
		}
	}
	return result
}

// Paths returns the members ordered by their normalised POSIX form.
func (s *Set) Paths() []FilePath {
	keys := make([]string, 0, len(s.paths))
	for key := range s.paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]FilePath, len(keys))
	for i, key := range keys {
		out[i] = s.paths[key]
	}
	return out
}
