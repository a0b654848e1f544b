package turbopath

import (
	"strings"

	"github.com/pkg/errors"
)

// Platform selects the surface syntax used when rendering a path for an
// environment. The caller decides which one applies.
type Platform int

const (
	// Posix renders with `/` separators and a leading `/` for rooted paths.
	Posix Platform = iota
	// Windows renders with `\` separators and drive specs.
	Windows
)

var _platformNames = map[Platform]string{
	Posix:   "posix",
	Windows: "windows",
}

// ParsePlatform converts "posix" or "windows" (in any case) to a Platform.
func ParsePlatform(name string) (Platform, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for platform, platformName := range _platformNames {
		if platformName == normalized {
			return platform, nil
		}
	}
	return Posix, errors.Wrapf(ErrUnknownPlatform, "%q", name)
}

func (p Platform) String() string {
	if name, ok := _platformNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if _, ok := _platformNames[p]; !ok {
		return nil, errors.Wrapf(ErrUnknownPlatform, "%d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	platform, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = platform
	return nil
}
