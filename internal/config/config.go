/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the
// user scope. Environment variables are treated as read-only overrides at
// runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type OutputConfig struct {
	Dir string `yaml:"dir"` // where rendered flyers are written
}

type FontConfig struct {
	URL string `yaml:"url"` // TTF download source
	Dir string `yaml:"dir"` // local font cache; empty = per-user cache dir
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Output        OutputConfig  `yaml:"output"`
	Font          FontConfig    `yaml:"font"`
	Logging       LoggingConfig `yaml:"logging"`
}

// DefaultFontURL is where the preferred monospaced face is fetched from on
// first use. The flyer layout was designed around Latin Modern Mono 10.
const DefaultFontURL = "https://github.com/dworktg/latin-modern-mono-10/blob/master/fonts/lmmono10regular.ttf?raw=true"

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Output:        OutputConfig{Dir: "out"},
		Font:          FontConfig{URL: DefaultFontURL, Dir: ""},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvOutDir  = "FLYER_OUT_DIR"
	EnvFontURL = "FLYER_FONT_URL"
	EnvFontDir = "FLYER_FONT_DIR"
	// Logging envs
	EnvLogLevel  = "FLYER_LOG_LEVEL"
	EnvLogFormat = "FLYER_LOG_FORMAT"
	EnvLogSource = "FLYER_LOG_SOURCE"
	EnvLogFile   = "FLYER_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "AsciiFlyers")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "AsciiFlyers")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "asciiflyers")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// FontCacheDir resolves the effective font cache directory for cfg.
func FontCacheDir(cfg AppConfig) (string, error) {
	if strings.TrimSpace(cfg.Font.Dir) != "" {
		return cfg.Font.Dir, nil
	}
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "ttf"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Output.Dir) != "" {
		dst.Output.Dir = src.Output.Dir
	}
	if strings.TrimSpace(src.Font.URL) != "" {
		dst.Font.URL = src.Font.URL
	}
	if strings.TrimSpace(src.Font.Dir) != "" {
		dst.Font.Dir = src.Font.Dir
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvOutDir)); v != "" {
		cfg.Output.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontURL)); v != "" {
		cfg.Font.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontDir)); v != "" {
		cfg.Font.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
