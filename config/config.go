package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
)

// config structure
type Config struct {
	Archive ArchiveConfig `mapstructure:"ARCHIVE"`
	Github  GithubConfig  `mapstructure:"GITHUB"`
	Logs    LogsConfig    `mapstructure:"LOGS"`
}

type ArchiveConfig struct {
	RootDirectory  string `mapstructure:"RootDirectory"`
	RecordFileName string `mapstructure:"RecordFileName"`
	GitBinary      string `mapstructure:"GitBinary"`
}

type GithubConfig struct {
	BaseURL string `mapstructure:"BaseURL"` // empty means public api.github.com
	PerPage int    `mapstructure:"PerPage"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJSON"`
}

// Load reads config/config.toml next to the binary or in the working directory.
// When no file is found the defaults are returned
func Load() (*Config, error) {
	cfg := GetDefault()

	configFilePath, err := findConfigFile()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, err
	}

	// load default and config file content
	_, err = snakelet.InitAndLoad(cfg, configFilePath)

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return "", err
	}

	candidates := []string{
		filepath.Join(dir, "config", "config.toml"),
		filepath.Join("config", "config.toml"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", os.ErrNotExist
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		Archive: ArchiveConfig{
			RootDirectory:  "Repos_Archive",
			RecordFileName: "info.json",
			GitBinary:      "git",
		},
		Github: GithubConfig{
			BaseURL: "",
			PerPage: 100,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
	}
}
