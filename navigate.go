package turbopath

// Append adds right's elements after this path's, ignoring navigation
// semantics: leading separators on right are dropped and "." or ".." are
// kept as-is. The result keeps this path's rootedness, unless this path is
// empty, in which case right is returned unchanged.
func (p FilePath) Append(right FilePath) FilePath {
	if p.empty {
		return right
	}
	return fromParts(concat(p.parts, right.parts), p.rooted)
}

// Navigate moves from this path by step the way changing directory would.
// A rooted step replaces this path entirely. The result is always
// normalised, so stepping above a rooted path's root is an error while a
// relative path just gathers leading ".." elements.
func (p FilePath) Navigate(step FilePath) (FilePath, error) {
	if step.rooted {
		return step.Normalise()
	}
	return fromParts(concat(p.parts, step.parts), p.rooted).Normalise()
}
