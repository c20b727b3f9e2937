package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/docfile/pkg/configfile"
	"github.com/vertti/docfile/pkg/logger"
)

// Config holds settings read from .docfile.yaml and DOCFILE_* variables.
type Config struct {
	LogLevel string     `mapstructure:"log-level"`
	JSON     JSONConfig `mapstructure:"json"`
	CSV      CSVConfig  `mapstructure:"csv"`
}

type JSONConfig struct {
	Indent int `mapstructure:"indent"`
}

type CSVConfig struct {
	Comma string `mapstructure:"comma"`
}

var cfg Config

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.JSON.Indent < 0 || c.JSON.Indent > 16 {
		errs = append(errs, fmt.Errorf("json.indent must be between 0 and 16, got %d", c.JSON.Indent))
	}
	if utf8.RuneCountInString(c.CSV.Comma) != 1 {
		errs = append(errs, fmt.Errorf("csv.comma must be a single character, got %q", c.CSV.Comma))
	} else if r := c.comma(); r == '"' || r == '\r' || r == '\n' {
		errs = append(errs, fmt.Errorf("csv.comma %q is not a valid delimiter", c.CSV.Comma))
	}

	return errors.Join(errs...)
}

func (c *Config) comma() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Comma)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log-level", "warn")
	v.SetDefault("json.indent", 4)
	v.SetDefault("csv.comma", ",")
	v.SetEnvPrefix("DOCFILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := newViper()
	if err := v.BindPFlag("log-level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := configfile.Find(wd, configPath)
	switch {
	case errors.Is(err, configfile.ErrNotFound):
		path = ""
	case err != nil:
		return err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := logger.ParseLevel(c.LogLevel)
	logger.Initialize(level)
	if path != "" {
		slog.Debug("config file loaded", "config_file", path)
	}
	slog.Debug("configuration loaded", "config", c)

	cfg = c
	return nil
}
