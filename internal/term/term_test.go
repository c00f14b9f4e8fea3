package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdillick/epub2json/internal/config"
)

// tempFile returns a regular file handle, which is never a character device.
func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestEnabled_ExplicitModes(t *testing.T) {
	f := tempFile(t)
	assert.True(t, Enabled(config.ColorAlways, f))
	assert.False(t, Enabled(config.ColorNever, f))
}

func TestEnabled_AutoOnRegularFile(t *testing.T) {
	// Regular files are not terminals, so auto mode disables colors.
	assert.False(t, Enabled(config.ColorAuto, tempFile(t)))
}

func TestEnabled_AutoRespectsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, Enabled(config.ColorAuto, tempFile(t)))
}

func TestEnabled_AutoRespectsDumbTerm(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, Enabled(config.ColorAuto, tempFile(t)))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.False(t, IsTerminal(tempFile(t)))
}
