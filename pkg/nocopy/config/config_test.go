package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := config.Config{BaseURL: "https://noco.example.com/api/v1/", AuthToken: "token"}
	require.NoError(t, in.ToFile(path))

	out, err := config.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))
	_, err := config.FromFile(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.Config{BaseURL: "https://file.example.com", AuthToken: "file-token"}.ToFile(path))

	t.Run("from file", func(t *testing.T) {
		cfg, err := config.Resolve(path, "", "")
		require.NoError(t, err)
		assert.Equal(t, "file-token", cfg.AuthToken)
	})

	t.Run("from parameters", func(t *testing.T) {
		cfg, err := config.Resolve("", "https://flag.example.com", "flag-token")
		require.NoError(t, err)
		assert.Equal(t, "https://flag.example.com", cfg.BaseURL)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv(config.EnvURL, "https://env.example.com")
		t.Setenv(config.EnvToken, "env-token")
		cfg, err := config.Resolve("", "", "")
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.AuthToken)
	})

	t.Run("file and parameters conflict", func(t *testing.T) {
		_, err := config.Resolve(path, "https://flag.example.com", "flag-token")
		assert.Error(t, err)
	})

	t.Run("url without token", func(t *testing.T) {
		_, err := config.Resolve("", "https://flag.example.com", "")
		assert.Error(t, err)
	})

	t.Run("nothing given", func(t *testing.T) {
		_, err := config.Resolve("", "", "")
		assert.Error(t, err)
	})
}
