// Package config loads the small demo-harness configuration (log level,
// data directory, listening options for the annotation metrics endpoint)
// the cmd/streetlinkdemo binary runs with. It deliberately does NOT carry
// any of the linker's own constants (search radius, warning distance,
// duplicate-way epsilon) — those are fixed values, not tunable
// configuration surface, matching linker/constants.go.
//
// Uses yaml.v3 for the file format, a custom UnmarshalYAML dispatching on
// a string discriminator for one field, and an enum type with the
// String/FromString/MarshalYAML/UnmarshalYAML quartet applied consistently
// to every enum it configures.
package config

import (
	"errors"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel LogLevel `yaml:"log-level"`
	DataDir  string   `yaml:"data-dir"`
	Metrics  MetricsOptions `yaml:"metrics"`
}

type MetricsOptions struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Read loads a Config from file, matching ReadConfig(file string)'s
// shape (log-on-entry, panic on unreadable file) but propagating a YAML
// parse error instead of silently ignoring it, since a malformed demo
// config is a programmer/operator mistake worth surfacing immediately.
func Read(file string) Config {
	slog.Info("reading config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file", "error", err)
		panic(err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Error("failed to parse config file", "error", err)
		panic(err)
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = Info
	}
	return cfg
}

//**********************************************************
// log level enum
//**********************************************************

type LogLevel byte

const (
	Debug LogLevel = iota + 1
	Info
	Warn
	Error
)

func (self LogLevel) String() string {
	switch self {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		panic("unknown log level")
	}
}

func (self LogLevel) SlogLevel() slog.Level {
	switch self {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		panic("unknown log level")
	}
}

func (self LogLevel) MarshalYAML() (any, error) {
	return self.String(), nil
}

func (self *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	lvl, err := LogLevelFromString(value.Value)
	if err != nil {
		return err
	}
	*self = lvl
	return nil
}

func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, errors.New("unknown log level: " + s)
	}
}
