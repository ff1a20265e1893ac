package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/config"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal/fsutil"
)

// TestConfig_DefaultsWithoutFile tests that no file means the standard numbering
func TestConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	fsys := fsutil.NewMemoryFileSystem()

	cfg, err := config.LoadAppConfig(fsys, "")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 901001, cfg.PseudoTAP.Start)
	assert.Equal(t, 1000, cfg.PseudoTAP.Capacity)
	assert.Equal(t, 7.0, cfg.PseudoTAP.Offset)
	assert.Equal(t, "TRWALK", cfg.WalkLink.Mode)
	assert.Equal(t, 1.0, cfg.WalkLink.Weight)
	assert.NoError(t, config.Validate(cfg))
}

// TestConfig_PartialFile tests that absent fields keep their defaults
func TestConfig_PartialFile(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("bypass.yml", []byte("pseudoTap:\n  start: 950001\nwalkLink:\n  weight: 0.5\n"), 0644)

	cfg, err := config.LoadAppConfig(fsys, "")
	require.NoError(t, err)

	assert.Equal(t, 950001, cfg.PseudoTAP.Start)
	assert.Equal(t, 1000, cfg.PseudoTAP.Capacity)
	assert.Equal(t, 0.5, cfg.WalkLink.Weight)
	assert.Equal(t, "TRWALK", cfg.WalkLink.Mode)
	assert.Equal(t, config.Default().TAP, cfg.TAP)
}

// TestConfig_Resolve tests the lookup order flag, env, default paths
func TestConfig_Resolve(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("bypass.yaml", []byte{}, 0644)

	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, "bypass.yaml", config.Resolve(fsys, ""))

	t.Setenv(config.EnvConfigPath, "/etc/bypass.yml")
	assert.Equal(t, "/etc/bypass.yml", config.Resolve(fsys, ""))
	assert.Equal(t, "custom.yml", config.Resolve(fsys, "custom.yml"))

	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, "", config.Resolve(fsutil.NewMemoryFileSystem(), ""))
}

// TestConfig_EnvPath tests loading through $BYPASS_CONFIG
func TestConfig_EnvPath(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("/etc/bypass.yml", []byte("walkLink:\n  mode: WALK\n"), 0644)
	t.Setenv(config.EnvConfigPath, "/etc/bypass.yml")

	cfg, err := config.LoadAppConfig(fsys, "")
	require.NoError(t, err)
	assert.Equal(t, "WALK", cfg.WalkLink.Mode)
}

// TestConfig_Errors tests missing, invalid and out of range files
func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "invalid: yaml: content: [[["},
		{name: "zero capacity", data: "pseudoTap:\n  capacity: 0\n"},
		{name: "negative start", data: "pseudoTap:\n  start: -1\n"},
		{name: "empty mode", data: "walkLink:\n  mode: \"\"\n"},
		{name: "comma in mode", data: "walkLink:\n  mode: \"TR,WALK\"\n"},
		{name: "floor above block", data: "tap:\n  blockFloor: 100000\n"},
		{name: "negative weight", data: "walkLink:\n  weight: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fsutil.NewMemoryFileSystem()
			fsys.WriteFile("c.yml", []byte(tt.data), 0644)

			_, err := config.LoadAppConfig(fsys, "c.yml")
			assert.Error(t, err)
		})
	}

	_, err := config.LoadAppConfig(fsutil.NewMemoryFileSystem(), "missing.yml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestConfig_EmptyFile tests that an empty file yields the defaults
func TestConfig_EmptyFile(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("c.yml", []byte(""), 0644)

	cfg, err := config.LoadAppConfig(fsys, "c.yml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestConfig_YAMLMarshaling tests that the default config round trips
func TestConfig_YAMLMarshaling(t *testing.T) {
	data, err := yaml.Marshal(config.Default())
	require.NoError(t, err)

	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile("c.yml", data, 0644)

	cfg, err := config.LoadAppConfig(fsys, "c.yml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Contains(t, string(data), "pseudoTap:")
}

// TestConfig_LoadDotEnv tests .env loading without overriding the environment
func TestConfig_LoadDotEnv(t *testing.T) {
	const fresh = "BYPASS_TEST_DOTENV_FRESH"
	t.Cleanup(func() { os.Unsetenv(fresh) })
	t.Setenv("BYPASS_TEST_DOTENV_SET", "keep")

	fsys := fsutil.NewMemoryFileSystem()
	fsys.WriteFile(".env", []byte(fresh+"=from-file\nBYPASS_TEST_DOTENV_SET=override\n"), 0644)

	require.NoError(t, config.LoadDotEnv(fsys, ".env"))
	assert.Equal(t, "from-file", os.Getenv(fresh))
	assert.Equal(t, "keep", os.Getenv("BYPASS_TEST_DOTENV_SET"))

	assert.NoError(t, config.LoadDotEnv(fsys, "missing.env"))
}
