package turbopath

import (
	"strings"

	"github.com/pkg/errors"
)

// Extension returns the lower-cased text after the last "." of the path as
// rendered for platform. A dot that belongs to a directory, rather than to
// the final element, does not count.
func (p FilePath) Extension(platform Platform) (string, error) {
	rendered := p.ToEnvironmentalPath(platform)
	dot := strings.LastIndex(rendered, ".")
	if dot < 0 || separatorAfter(rendered, dot) {
		return "", errors.Wrapf(ErrNoExtension, "%v", rendered)
	}
	return strings.ToLower(rendered[dot+1:]), nil
}

func separatorAfter(rendered string, index int) bool {
	return strings.LastIndex(rendered, _windowsSeparator) > index ||
		strings.LastIndex(rendered, _posixSeparator) > index
}

// FileNameWithoutExtension returns the final element with its extension
// and the dot before it removed.
func (p FilePath) FileNameWithoutExtension(platform Platform) (string, error) {
	last, ok := p.LastElement()
	if !ok {
		return "", errors.Wrap(ErrNoExtension, "path has no elements")
	}
	extension, err := p.Extension(platform)
	if err != nil {
		return "", err
	}
	suffix := "." + extension
	if len(last) < len(suffix) || !strings.EqualFold(last[len(last)-len(suffix):], suffix) {
		return "", errors.Wrapf(ErrNoExtension, "%v", last)
	}
	return last[:len(last)-len(suffix)], nil
}

// FileNameWithExtension returns the final element with a lower-cased
// extension.
func (p FilePath) FileNameWithExtension(platform Platform) (string, error) {
	name, err := p.FileNameWithoutExtension(platform)
	if err != nil {
		return "", err
	}
	extension, err := p.Extension(platform)
	if err != nil {
		return "", err
	}
	return name + "." + extension, nil
}

// LastElement returns the final path element, or false if there is none.
func (p FilePath) LastElement() (string, bool) {
	if len(p.parts) == 0 {
		return "", false
	}
	return p.parts[len(p.parts)-1], true
}
