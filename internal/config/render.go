package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/fileutil"
	"go.yaml.in/yaml/v3"
)

// Render encodes cfg in the given format. YAML and TOML output start with a
// comment header.
func Render(cfg Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	header := fmt.Sprintf("# %s project configuration\n", branding.DisplayName())

	switch format {
	case FormatYAML:
		buf.WriteString(header)
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		buf.Write(out)
		buf.WriteByte('\n')
	case FormatTOML:
		buf.WriteString(header)
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("encoding TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}

// WriteTemplate writes cfg to dir as frontkit.config.<format>. When any
// config file already exists and force is false the write is skipped and the
// existing path is returned. A forced write removes config files in other
// formats so the new file is the one Find and Load pick up.
func WriteTemplate(dir string, cfg Config, format Format, force bool) (string, fileutil.Outcome, error) {
	if existing, ok := Find(dir); ok && !force {
		return existing, fileutil.OutcomeSkipped, nil
	}

	data, err := Render(cfg, format)
	if err != nil {
		return "", "", err
	}

	path := filepath.Join(dir, FileName(format))
	outcome, err := fileutil.WriteWithForcePolicy(path, data, force)
	if err != nil {
		return "", "", fmt.Errorf("writing config: %w", err)
	}

	replaced, err := removeOtherConfigs(dir, path)
	if err != nil {
		return "", "", err
	}
	if replaced && outcome == fileutil.OutcomeCreated {
		outcome = fileutil.OutcomeOverwritten
	}
	return path, outcome, nil
}

func removeOtherConfigs(dir, keep string) (bool, error) {
	removed := false
	for _, ext := range searchExts {
		p := filepath.Join(dir, branding.ConfigName()+"."+ext)
		if p == keep {
			continue
		}
		err := os.Remove(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("removing old config %s: %w", p, err)
		}
		removed = true
	}
	return removed, nil
}
