package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is consulted when --config is not given.
const defaultConfigFile = "starkgen.toml"

// Config is the resolved CLI configuration.
type Config struct {
	OutDir  string `toml:"out_dir"`
	Strict  bool   `toml:"strict"`
	Format  bool   `toml:"format"`
	Verbose bool   `toml:"verbose"`
}

// defaultConfig returns the configuration used with no file and no
// flags.
func defaultConfig() Config {
	return Config{Format: true}
}

// loadConfig overlays a TOML file onto the defaults. Only keys the
// file defines override. A missing default file falls back to the
// defaults; a missing explicitly named file is an error.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("out_dir") {
		cfg.OutDir = raw.OutDir
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("format") {
		cfg.Format = raw.Format
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	return cfg, nil
}
