package turbopath

import (
	"strings"
	"unicode/utf8"
)

const (
	_posixSeparator   = "/"
	_windowsSeparator = `\`
)

// ToPosixPath renders the path with `/` separators. Drive letters become a
// plain first element, so `C:\temp` renders as `/C/temp`.
func (p FilePath) ToPosixPath() string {
	joined := strings.Join(p.parts, _posixSeparator)
	if p.rooted {
		return _posixSeparator + joined
	}
	return joined
}

// ToWindowsPath renders the path with `\` separators. On a rooted path the
// first element is a drive letter when it is a single character, otherwise
// a leading share folder. Relative paths are normalised before rendering;
// rooted ones are not.
func (p FilePath) ToWindowsPath() string {
	if p.rooted {
		return p.rootedWindowsPath()
	}
	// normalising a relative path cannot fail
	normalised, _ := p.Normalise()
	return strings.Join(normalised.parts, _windowsSeparator)
}

func (p FilePath) rootedWindowsPath() string {
	if len(p.parts) < 2 {
		return _windowsSeparator + p.windowsDriveSpecOrFolder()
	}
	return p.windowsDriveSpecOrFolder() + _windowsSeparator + strings.Join(p.parts[1:], _windowsSeparator)
}

func (p FilePath) windowsDriveSpecOrFolder() string {
	if len(p.parts) < 1 {
		return ""
	}
	if utf8.RuneCountInString(p.parts[0]) == 1 {
		return p.parts[0] + ":"
	}
	return _windowsSeparator + p.parts[0]
}

// ToEnvironmentalPath renders the path for the given platform.
func (p FilePath) ToEnvironmentalPath(platform Platform) string {
	if platform == Windows {
		return p.ToWindowsPath()
	}
	return p.ToPosixPath()
}

// ToEnvironmentalPathWithoutFileName renders the path for the given platform
// with the final file name and the separator before it removed.
func (p FilePath) ToEnvironmentalPathWithoutFileName(platform Platform) (string, error) {
	fileName, err := p.FileNameWithExtension(platform)
	if err != nil {
		return "", err
	}
	rendered := p.ToEnvironmentalPath(platform)
	cut := len(rendered) - len(fileName) - 1
	if cut <= 0 {
		return "", nil
	}
	return rendered[:cut], nil
}
