package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0644))
	return path
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	top := touch(t, filepath.Join(root, ".env"))
	topDev := touch(t, filepath.Join(root, ".env.dev"))
	touch(t, filepath.Join(root, "config.yml"))
	nested := touch(t, filepath.Join(root, "app", ".env"))
	ignored := touch(t, filepath.Join(root, "vendor", ".env"))
	explicit := touch(t, filepath.Join(root, "settings.conf"))

	logger := hclog.NewNullLogger()

	tests := []struct {
		name  string
		paths []string
		opts  DiscoverOptions
		want  []string
	}{
		{
			name:  "Flat directory",
			paths: []string{root},
			want:  []string{top, topDev},
		},
		{
			name:  "Recursive with exclude",
			paths: []string{root},
			opts:  DiscoverOptions{Recursive: true, Exclude: []string{filepath.Join(root, "vendor")}},
			want:  []string{top, topDev, nested},
		},
		{
			name:  "Explicit file and duplicates",
			paths: []string{explicit, root, top},
			want:  []string{top, topDev, explicit},
		},
		{
			name:  "Excluded file",
			paths: []string{root},
			opts:  DiscoverOptions{Exclude: []string{topDev}},
			want:  []string{top},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(tt.paths, tt.opts, logger)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
			assert.NotContains(t, got, ignored)
		})
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "missing")}, DiscoverOptions{}, hclog.NewNullLogger())
	assert.Error(t, err)
}

func TestIsEnvFileName(t *testing.T) {
	assert.True(t, IsEnvFileName(".env"))
	assert.True(t, IsEnvFileName(".env.production"))
	assert.False(t, IsEnvFileName("env"))
	assert.False(t, IsEnvFileName("app.env"))
}
