package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Neumenon/stylecode/style"
)

// Config holds CLI defaults.
type Config struct {
	Mode string `mapstructure:"mode"`
	Log  struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Transcript struct {
		CRC bool `mapstructure:"crc"`
	} `mapstructure:"transcript"`
	Parse struct {
		Strict bool `mapstructure:"strict"`
	} `mapstructure:"parse"`
}

func defaultConfigPaths() []string {
	return []string{".", "$HOME/.config/stylecode"}
}

// loadConfig reads stylecode.yaml from the first of paths that has one.
// A missing file is not an error.
func loadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("stylecode")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("STYLECODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", style.ModeDefault.String())
	v.SetDefault("log.level", "warn")
	v.SetDefault("transcript.crc", true)
	v.SetDefault("parse.strict", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if _, err := style.ParseMode(cfg.Mode); err != nil {
		return nil, fmt.Errorf("config mode: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// newLogger returns a text logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
