package turbopath

import "github.com/pkg/errors"

var (
	// ErrInvalidNavigation is returned when resolving ".." would climb above
	// the root of a rooted path.
	ErrInvalidNavigation = errors.New("tried to navigate before path root")
	// ErrNotSubpath is returned by Unroot when the root is not a prefix of
	// the full path.
	ErrNotSubpath = errors.New("path is not a subpath of root")
	// ErrNoExtension is returned when the final path element has no extension.
	ErrNoExtension = errors.New("does not have an extension")
	// ErrUnknownPlatform is returned when parsing an unrecognised platform name.
	ErrUnknownPlatform = errors.New("unknown platform")
)
