/*
File    : jcjl/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional .jcjlrc.yaml file cmd/jcjl consults for
// persistent CLI preferences. Nothing in the pipeline proper depends on
// it — a missing file is not an error, only a malformed one is.
package config

import (
	"os"
	"path/filepath"

	"github.com/akashmaji946/jcjl/internal/jerr"
	"gopkg.in/yaml.v3"
)

const fileName = ".jcjlrc.yaml"

// Config holds the preferences .jcjlrc.yaml may set. Default() gives
// every default: color on, the stock prompt, no history file. In the zero
// value a nil Color reads as on, but Prompt is empty.
type Config struct {
	Color       *bool  `yaml:"color"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"historyFile"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	on := true
	return Config{Color: &on, Prompt: "jcjl >>> ", HistoryFile: ""}
}

// Load searches ./.jcjlrc.yaml then $HOME/.jcjlrc.yaml and merges whatever
// it finds over Default(). A missing file at either location is not an
// error; a file that exists but fails to parse is a ConfigError.
func Load() (Config, jerr.Error) {
	cfg := Default()

	path := findConfigFile()
	if path == "" {
		return cfg, jerr.Nil()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, jerr.Nil()
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, jerr.New(jerr.ConfigError, "Couldn't parse %s: %v", path, err)
	}

	if loaded.Color != nil {
		cfg.Color = loaded.Color
	}
	if loaded.Prompt != "" {
		cfg.Prompt = loaded.Prompt
	}
	if loaded.HistoryFile != "" {
		cfg.HistoryFile = loaded.HistoryFile
	}
	return cfg, jerr.Nil()
}

func findConfigFile() string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ColorEnabled reports whether banners/diagnostics should be colorized.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
