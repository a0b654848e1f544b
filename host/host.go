// Package host decides which Platform the embedding application runs on.
//
// The turbopath package never inspects the operating system itself; it asks
// for a Platform wherever a rendering depends on one. Environment is the
// piece that answers that question once, from runtime.GOOS or from the
// TURBOPATH_PLATFORM environment variable, and then renders paths with it.
package host

import (
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/vercel/turbopath"
)

// EnvPrefix is the prefix for environment variables read by Load.
const EnvPrefix = "TURBOPATH"

// alias so we can mock in tests
var runtimeGOOS = runtime.GOOS

// Config holds the settings read from the environment.
type Config struct {
	// Platform overrides detection when set to "posix" or "windows".
	Platform string `envconfig:"PLATFORM"`
}

// Environment renders paths for a single, fixed Platform.
type Environment struct {
	Platform turbopath.Platform
	logger   hclog.Logger
}

// Load reads Config from TURBOPATH_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "invalid environment variable")
	}
	return cfg, nil
}

// New builds an Environment from the process environment. A nil logger
// discards output.
func New(logger hclog.Logger) (*Environment, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg, logger)
}

// FromConfig builds an Environment from cfg, falling back to the running
// operating system when cfg does not name a platform.
func FromConfig(cfg *Config, logger hclog.Logger) (*Environment, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("host")

	if cfg != nil && cfg.Platform != "" {
		platform, err := turbopath.ParsePlatform(cfg.Platform)
		if err != nil {
			logger.Warn("invalid platform override", "value", cfg.Platform)
			return nil, errors.Wrapf(err, "%v_PLATFORM", EnvPrefix)
		}
		logger.Debug("platform overridden", "platform", platform)
		return &Environment{Platform: platform, logger: logger}, nil
	}

	platform := PlatformForGOOS(runtimeGOOS)
	logger.Debug("platform detected", "goos", runtimeGOOS, "platform", platform)
	return &Environment{Platform: platform, logger: logger}, nil
}

// PlatformForGOOS maps a GOOS value to the path syntax it uses. Only
// windows uses Windows syntax.
func PlatformForGOOS(goos string) turbopath.Platform {
	if goos == "windows" {
		return turbopath.Windows
	}
	return turbopath.Posix
}

// Path renders p for this environment.
func (e *Environment) Path(p turbopath.FilePath) string {
	return p.ToEnvironmentalPath(e.Platform)
}

// PathWithoutFileName renders the directory part of p for this environment.
func (e *Environment) PathWithoutFileName(p turbopath.FilePath) (string, error) {
	return p.ToEnvironmentalPathWithoutFileName(e.Platform)
}

// Extension returns the extension of p as seen in this environment.
func (e *Environment) Extension(p turbopath.FilePath) (string, error) {
	ext, err := p.Extension(e.Platform)
	if err != nil {
		e.logger.Trace("no extension", "path", p.ToPosixPath())
		return "", err
	}
	return ext, nil
}

// FileNameWithoutExtension returns the final element of p without its
// extension.
func (e *Environment) FileNameWithoutExtension(p turbopath.FilePath) (string, error) {
	return p.FileNameWithoutExtension(e.Platform)
}

// FileNameWithExtension returns the final element of p with a lower-cased
// extension.
func (e *Environment) FileNameWithExtension(p turbopath.FilePath) (string, error) {
	return p.FileNameWithExtension(e.Platform)
}
