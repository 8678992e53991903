// Package config resolves the horrorlist configuration file, environment
// overrides and the optional seed list.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = ".horrorlist" // .yaml is implicit
	envPrefix  = "HORRORLIST"

	// DefaultAudioCommand plays the resource on a loop without a window.
	DefaultAudioCommand = "mpv --really-quiet --loop=inf --no-video"
	// DefaultAudioResource is the theme played while the UI is open.
	DefaultAudioResource = "~/.horrorlist/halloween_theme.mp3"
)

// Config is the resolved application configuration.
type Config struct {
	Audio Audio
	Log   Log
}

// Audio configures the background music.
type Audio struct {
	Enabled  bool
	Command  string
	Resource string
}

// Log configures the zap logger. An empty Path disables logging.
type Log struct {
	Path  string
	Level string
}

// Load reads .horrorlist.yaml from $HORRORLIST_CONFIG_PATH, the working
// directory and the home directory, layered under HORRORLIST_* environment
// variables. A missing file is fine; a malformed one is an error.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.command", DefaultAudioCommand)
	v.SetDefault("audio.resource", DefaultAudioResource)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigName(configName)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	resource, err := homedir.Expand(v.GetString("audio.resource"))
	if err != nil {
		return nil, fmt.Errorf("config: audio.resource: %w", err)
	}
	logPath, err := homedir.Expand(v.GetString("log.path"))
	if err != nil {
		return nil, fmt.Errorf("config: log.path: %w", err)
	}

	return &Config{
		Audio: Audio{
			Enabled:  v.GetBool("audio.enabled"),
			Command:  v.GetString("audio.command"),
			Resource: resource,
		},
		Log: Log{
			Path:  logPath,
			Level: v.GetString("log.level"),
		},
	}, nil
}
