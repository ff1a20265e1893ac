package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal/fsutil"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "BYPASS_CONFIG"

// DefaultPaths are tried in order when no path is given
var DefaultPaths = []string{"bypass.yml", "bypass.yaml"}

// LoadDotEnv loads variables from a .env file if it exists. Variables that are
// already set are left alone.
func LoadDotEnv(fsys fsutil.FileSystem, path string) error {
	if !fsys.Exists(path) {
		return nil
	}
	f, err := fsys.Open(path)
	if err != nil {
		return errors.Wrap(err, "open dotenv")
	}
	defer f.Close()
	vars, err := godotenv.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return errors.Wrapf(err, "set %s", k)
		}
	}
	return nil
}

// Resolve picks the config file to read: the explicit path, then
// $BYPASS_CONFIG, then the first of DefaultPaths that exists. An empty result
// means no file, use defaults.
func Resolve(fsys fsutil.FileSystem, path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	for _, p := range DefaultPaths {
		if fsys.Exists(p) {
			return p
		}
	}
	return ""
}

// LoadAppConfig loads and validates the configuration. Fields absent from the
// file keep their defaults.
func LoadAppConfig(fsys fsutil.FileSystem, path string) (AppConfig, error) {
	cfg := Default()
	path = Resolve(fsys, path)
	if path == "" {
		return cfg, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return AppConfig{}, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, errors.Wrapf(err, "parse %s", path)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate checks the struct tags
func Validate(cfg AppConfig) error {
	return validator.New().Struct(cfg)
}
