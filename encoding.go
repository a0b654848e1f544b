package turbopath

// MarshalText implements encoding.TextMarshaler using the POSIX form.
func (p FilePath) MarshalText() ([]byte, error) {
	return []byte(p.ToPosixPath()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It parses text exactly
// like New.
func (p *FilePath) UnmarshalText(text []byte) error {
	*p = New(string(text))
	return nil
}
