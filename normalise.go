package turbopath

import "github.com/pkg/errors"

const (
	_currentDir = "."
	_parentDir  = ".."
)

// Normalise removes "." elements and lets each ".." cancel the nearest real
// element before it. Leftover ".." elements are kept at the front of a
// relative path; on a rooted path they are an error, since nothing exists
// above the root.
func (p FilePath) Normalise() (FilePath, error) {
	kept := make([]string, 0, len(p.parts))
	ascend := 0

	for i := len(p.parts) - 1; i >= 0; i-- {
		part := p.parts[i]
		switch {
		case part == _currentDir:
			continue
		case part == _parentDir:
			ascend++
		case ascend > 0:
			ascend--
		default:
			kept = append(kept, part)
		}
	}

	if ascend > 0 && p.rooted {
		return FilePath{}, errors.Wrapf(ErrInvalidNavigation, "normalising %v", p.ToPosixPath())
	}

	result := make([]string, 0, ascend+len(kept))
	for i := 0; i < ascend; i++ {
		result = append(result, _parentDir)
	}
	// kept was collected leaf first
	for i := len(kept) - 1; i >= 0; i-- {
		result = append(result, kept[i])
	}

	return fromParts(result, p.rooted), nil
}
