package host

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vercel/turbopath"
)

func withGOOS(t *testing.T, goos string) {
	t.Helper()
	previous := runtimeGOOS
	runtimeGOOS = goos
	t.Cleanup(func() { runtimeGOOS = previous })
}

func TestPlatformForGOOS(t *testing.T) {
	cases := []struct {
		GOOS     string
		Expected turbopath.Platform
	}{
		{"windows", turbopath.Windows},
		{"linux", turbopath.Posix},
		{"darwin", turbopath.Posix},
		{"freebsd", turbopath.Posix},
		{"plan9", turbopath.Posix},
	}
	for _, tc := range cases {
		t.Run(tc.GOOS, func(t *testing.T) {
			assert.Equal(t, tc.Expected, PlatformForGOOS(tc.GOOS))
		})
	}
}

func TestNew_DetectsFromGOOS(t *testing.T) {
	t.Setenv("TURBOPATH_PLATFORM", "")

	withGOOS(t, "windows")
	env, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, turbopath.Windows, env.Platform)

	withGOOS(t, "linux")
	env, err = New(nil)
	require.NoError(t, err)
	assert.Equal(t, turbopath.Posix, env.Platform)
}

func TestNew_EnvironmentOverride(t *testing.T) {
	withGOOS(t, "linux")
	t.Setenv("TURBOPATH_PLATFORM", "Windows")

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})

	env, err := New(logger)
	require.NoError(t, err)
	assert.Equal(t, turbopath.Windows, env.Platform)
	assert.Contains(t, buf.String(), "platform overridden")
}

func TestNew_InvalidOverride(t *testing.T) {
	t.Setenv("TURBOPATH_PLATFORM", "amiga")

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})

	_, err := New(logger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, turbopath.ErrUnknownPlatform))
	assert.Contains(t, err.Error(), "TURBOPATH_PLATFORM")
	assert.Contains(t, buf.String(), "invalid platform override")
}

func TestLoad(t *testing.T) {
	t.Setenv("TURBOPATH_PLATFORM", "posix")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "posix", cfg.Platform)
}

func TestFromConfig_NilConfig(t *testing.T) {
	withGOOS(t, "windows")
	env, err := FromConfig(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, turbopath.Windows, env.Platform)
}

func TestEnvironment_Rendering(t *testing.T) {
	windows, err := FromConfig(&Config{Platform: "windows"}, nil)
	require.NoError(t, err)
	posix, err := FromConfig(&Config{Platform: "posix"}, nil)
	require.NoError(t, err)

	p := turbopath.New(`C:\work\Reports\Summary.PDF`)

	assert.Equal(t, `C:\work\Reports\Summary.PDF`, windows.Path(p))
	assert.Equal(t, "/C/work/Reports/Summary.PDF", posix.Path(p))

	dir, err := windows.PathWithoutFileName(p)
	require.NoError(t, err)
	assert.Equal(t, `C:\work\Reports`, dir)

	dir, err = posix.PathWithoutFileName(p)
	require.NoError(t, err)
	assert.Equal(t, "/C/work/Reports", dir)

	ext, err := windows.Extension(p)
	require.NoError(t, err)
	assert.Equal(t, "pdf", ext)

	name, err := posix.FileNameWithoutExtension(p)
	require.NoError(t, err)
	assert.Equal(t, "Summary", name)

	name, err = posix.FileNameWithExtension(p)
	require.NoError(t, err)
	assert.Equal(t, "Summary.pdf", name)
}

func TestEnvironment_ExtensionMissing(t *testing.T) {
	env, err := FromConfig(&Config{Platform: "posix"}, nil)
	require.NoError(t, err)

	_, err = env.Extension(turbopath.New("/home/bob/directoryname.withperiod/filewithoutExtension"))
	assert.True(t, errors.Is(err, turbopath.ErrNoExtension))
}
