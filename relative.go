package turbopath

import "github.com/pkg/errors"

// RelativeTo returns a minimal path that leads from source to this path, so
// that source.Navigate(result) lands on this path.
//
// When the two share no leading elements there is nothing to climb back to:
// a rooted target is returned as-is, and a relative target is navigated
// to from source. Two different bare names are returned unchanged.
func (p FilePath) RelativeTo(source FilePath) (FilePath, error) {
	if len(p.parts) == 1 && len(source.parts) == 1 && p.parts[0] != source.parts[0] {
		return p, nil
	}

	common := commonPrefixLen(p.parts, source.parts)
	if common == 0 {
		if p.rooted {
			return p, nil
		}
		return source.Navigate(p)
	}

	ascend := len(source.parts) - common
	result := make([]string, 0, ascend+len(p.parts)-common)
	for i := 0; i < ascend; i++ {
		result = append(result, _parentDir)
	}
	result = append(result, p.parts[common:]...)

	return fromParts(result, false), nil
}

// Unroot removes root from the front of this path and returns the remaining
// elements as a relative path. Elements are compared literally; nothing is
// normalised first and rootedness is ignored.
func (p FilePath) Unroot(root FilePath) (FilePath, error) {
	if len(root.parts) > len(p.parts) {
		return FilePath{}, errors.Wrapf(ErrNotSubpath, "root %v is longer than %v", root.ToPosixPath(), p.ToPosixPath())
	}
	for i, part := range root.parts {
		if p.parts[i] != part {
			return FilePath{}, errors.Wrapf(ErrNotSubpath, "%v does not start with %v", p.ToPosixPath(), root.ToPosixPath())
		}
	}

	rest := make([]string, len(p.parts)-len(root.parts))
	copy(rest, p.parts[len(root.parts):])
	return fromParts(rest, false), nil
}

func commonPrefixLen(a []string, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
