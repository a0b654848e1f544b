// Package turbopath teaches the Go type system about a single kind of path
// that is not tied to the machine it runs on: FilePath.
//
// A FilePath is built from a string written in either POSIX or Windows
// style (or a mix of both). Forward slashes, backslashes and drive colons
// all separate elements, so "C:\temp/logs" and "/C/temp/logs" describe the
// same elements. Two properties are recorded from the raw string and never
// recomputed:
//
// - rooted: the string starts at a root (leading separator or drive spec)
// - empty: the string was empty or whitespace
//
// Everything else is an operation that returns a new FilePath:
//
// - Append joins element lists without interpreting "." or ".."
// - Navigate joins like `cd` would, and normalises the result
// - Normalise resolves "." and ".." segments
// - RelativeTo and Unroot compute relative paths
//
// Nothing in here touches a filesystem. Rendering for "the current
// environment" takes a Platform from the caller; see package host for one
// way of choosing it.
package turbopath

import (
	"strings"
	"unicode/utf8"
)

// FilePath is an immutable, parsed path.
type FilePath struct {
	parts  []string
	rooted bool
	empty  bool
}

// New parses input into a FilePath. It is the only way to turn text into a
// path; no normalisation happens here.
func New(input string) FilePath {
	return FilePath{
		parts:  strings.FieldsFunc(input, isSeparator),
		rooted: IsRooted(input),
		empty:  strings.TrimSpace(input) == "",
	}
}

// fromParts builds a derived path. The caller hands over ownership of parts.
func fromParts(parts []string, rooted bool) FilePath {
	return FilePath{parts: parts, rooted: rooted}
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\' || r == ':'
}

// IsRooted reports whether input starts at a root: a leading `/` or `\`,
// or a drive spec such as `C:`. The drive letter is a single character,
// which may span several bytes.
func IsRooted(input string) bool {
	if len(input) >= 1 && (input[0] == '/' || input[0] == '\\') {
		return true
	}
	_, size := utf8.DecodeRuneInString(input)
	return size > 0 && len(input) > size && input[size] == ':'
}

// IsRooted reports whether the path was parsed from a rooted string.
func (p FilePath) IsRooted() bool {
	return p.rooted
}

// IsEmpty returns true if the path was parsed from an empty or whitespace
// string. A rooted path with no elements, like "/", is not empty.
func (p FilePath) IsEmpty() bool {
	return p.empty
}

// Parts returns a copy of the path elements, root to leaf.
func (p FilePath) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// ToString returns a string represenation of this Path.
// Used for interfacing with APIs that require a string.
func (p FilePath) ToString() string {
	return p.ToPosixPath()
}

// String implements fmt.Stringer using the POSIX form.
func (p FilePath) String() string {
	return p.ToPosixPath()
}

// concat returns a fresh slice holding a followed by b.
func concat(a []string, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
