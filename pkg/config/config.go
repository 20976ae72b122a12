package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kataras/colorclip/pkg/clipboard"
)

// FileName is the configuration file looked up in the user config directory.
const FileName = "colorclip.toml"

// Config holds the defaults applied to every run.
//
//	spot_values = false   # emit "NAME=c1,c2,..." instead of the bare spot name
//	spot_tint   = true    # dilute spot values by the spot tint
//	skip_empty  = false   # leave the clipboard alone when no color was found
//	clipboard   = "system"
type Config struct {
	SpotValues bool   `toml:"spot_values"`
	SpotTint   bool   `toml:"spot_tint"`
	SkipEmpty  bool   `toml:"skip_empty"`
	Clipboard  string `toml:"clipboard"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SpotValues: false,
		SpotTint:   true,
		SkipEmpty:  false,
		Clipboard:  clipboard.BackendSystem,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/colorclip.toml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads path on top of Default. A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the clipboard backend name.
func (c Config) Validate() error {
	switch c.Clipboard {
	case clipboard.BackendSystem, clipboard.BackendOSC52, clipboard.BackendNone:
		return nil
	default:
		return fmt.Errorf("unknown clipboard backend %q (must be system, osc52 or none)", c.Clipboard)
	}
}
