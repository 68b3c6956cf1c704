package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/spf13/viper"
)

// Config keys as they appear in the config file.
const (
	KeyUseTailwind   = "useTailwind"
	KeyUseChakra     = "useChakra"
	KeyDefaultLayout = "defaultLayout"
	KeyPagesDir      = "pagesDir"
)

// Keys lists every recognized key in file order.
var Keys = []string{KeyUseTailwind, KeyUseChakra, KeyDefaultLayout, KeyPagesDir}

// Config is the project configuration. Absent fields take Default() values.
type Config struct {
	UseTailwind   bool   `mapstructure:"useTailwind" yaml:"useTailwind" json:"useTailwind" toml:"useTailwind"`
	UseChakra     bool   `mapstructure:"useChakra" yaml:"useChakra" json:"useChakra" toml:"useChakra"`
	DefaultLayout string `mapstructure:"defaultLayout" yaml:"defaultLayout" json:"defaultLayout" toml:"defaultLayout"`
	PagesDir      string `mapstructure:"pagesDir" yaml:"pagesDir" json:"pagesDir" toml:"pagesDir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		UseTailwind:   false,
		UseChakra:     false,
		DefaultLayout: "default",
		PagesDir:      "app",
	}
}

// FileName returns the config file name for a format, e.g. "frontkit.config.yaml".
func FileName(f Format) string {
	return branding.ConfigName() + "." + string(f)
}

// Find looks for a config file in dir, trying each supported extension in
// order. It returns the path and whether one was found.
func Find(dir string) (string, bool) {
	for _, ext := range searchExts {
		p := filepath.Join(dir, branding.ConfigName()+"."+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load reads the config from dir. A missing file is not an error: defaults
// are returned with an empty path. FRONTKIT_<KEY> environment variables
// override file values.
func Load(dir string) (*Config, string, error) {
	v := newViper()

	path, found := Find(dir)
	if found {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, path, nil
}

// Get returns the effective value of a single key as a string.
func Get(dir, key string) (string, error) {
	if !isKnownKey(key) {
		return "", fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	cfg, _, err := Load(dir)
	if err != nil {
		return "", err
	}
	switch key {
	case KeyUseTailwind:
		return fmt.Sprint(cfg.UseTailwind), nil
	case KeyUseChakra:
		return fmt.Sprint(cfg.UseChakra), nil
	case KeyDefaultLayout:
		return cfg.DefaultLayout, nil
	default:
		return cfg.PagesDir, nil
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyUseTailwind, d.UseTailwind)
	v.SetDefault(KeyUseChakra, d.UseChakra)
	v.SetDefault(KeyDefaultLayout, d.DefaultLayout)
	v.SetDefault(KeyPagesDir, d.PagesDir)
	return v
}

func isKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ErrUnknownFormat is returned for config formats other than yaml, json, toml.
var ErrUnknownFormat = errors.New("unknown config format")
