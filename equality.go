package turbopath

// Hashcode returns the key that identifies this path for equality: its
// normalised POSIX form. A rooted path that cannot be normalised falls back
// to its raw POSIX form, which always keeps a ".." element and so never
// collides with a normalised key.
func (p FilePath) Hashcode() string {
	normalised, err := p.Normalise()
	if err != nil {
		return p.ToPosixPath()
	}
	return normalised.ToPosixPath()
}

// Equal reports whether two paths name the same location once normalised,
// regardless of separator style. "a/b/c" equals `a\b\c` and "one/../two"
// equals "two", but "/a" does not equal "a".
func (p FilePath) Equal(other FilePath) bool {
	return p.Hashcode() == other.Hashcode()
}
