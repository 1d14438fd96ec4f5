// Package config loads pitwall's deployment-time options from
// ~/.pitwall/config.toml (overridable via PITWALL_* environment variables).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".pitwall"
	envPrefix  = "PITWALL"

	configFileMode = 0o644
	configDirMode  = 0o755
)

const (
	sourceForceKey   = "source.force"
	remoteBaseURLKey = "remote.base_url"
	demoBaseURLKey   = "demo.base_url"
	serveListenKey   = "serve.listen"
	serveDirKey      = "serve.dir"
)

// Force values accepted for source.force. Empty means full detection.
const (
	ForceNone    = ""
	ForceDemo    = "demo"
	ForceArchive = "archive"
)

type Config struct {
	Source SourceConfig `toml:"source"`
	Remote RemoteConfig `toml:"remote"`
	Demo   DemoConfig   `toml:"demo"`
	Serve  ServeConfig  `toml:"serve"`
}

type SourceConfig struct {
	// Force skips detection: "demo" starts at the demo probe,
	// "archive" starts in archive mode awaiting an upload.
	Force string `toml:"force"`
}

type RemoteConfig struct {
	BaseURL string `toml:"base_url"`
}

type DemoConfig struct {
	BaseURL string `toml:"base_url"`
}

type ServeConfig struct {
	Listen string `toml:"listen"`
	Dir    string `toml:"dir"`
}

// Load reads the config file if present and applies env overrides and
// defaults. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(sourceForceKey, ForceNone)
	cfg.SetDefault(remoteBaseURLKey, "http://localhost:8725")
	cfg.SetDefault(demoBaseURLKey, "http://localhost:8725")
	cfg.SetDefault(serveListenKey, "127.0.0.1:8725")
	cfg.SetDefault(serveDirKey, "")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Source: SourceConfig{Force: cfg.GetString(sourceForceKey)},
		Remote: RemoteConfig{BaseURL: cfg.GetString(remoteBaseURLKey)},
		Demo:   DemoConfig{BaseURL: cfg.GetString(demoBaseURLKey)},
		Serve: ServeConfig{
			Listen: cfg.GetString(serveListenKey),
			Dir:    cfg.GetString(serveDirKey),
		},
	}

	switch loaded.Source.Force {
	case ForceNone, ForceDemo, ForceArchive:
	default:
		return Config{}, fmt.Errorf("invalid source.force value %q", loaded.Source.Force)
	}

	return loaded, nil
}

// WriteDefault writes a default config file, refusing to
// clobber an existing one. Returns the written path.
func WriteDefault() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, configDir)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(dir, configName+"."+configType)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	defaults := Config{
		Source: SourceConfig{Force: ForceNone},
		Remote: RemoteConfig{BaseURL: "http://localhost:8725"},
		Demo:   DemoConfig{BaseURL: "http://localhost:8725"},
		Serve:  ServeConfig{Listen: "127.0.0.1:8725"},
	}

	encoded, err := toml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, encoded, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
