package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml files can carry "30s" style values.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err == nil {
		parsed, perr := time.ParseDuration(raw)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", raw, perr)
		}
		*d = Duration(parsed)
		return nil
	}

	// Bare numbers are read as seconds.
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(time.Duration(n) * time.Second)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

type Config struct {
	Remote    RemoteConfig    `yaml:"remote" mapstructure:"remote"`
	Web       WebConfig       `yaml:"web" mapstructure:"web"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail" mapstructure:"thumbnail"`
	Notify    NotifyConfig    `yaml:"notify" mapstructure:"notify"`
}

// RemoteConfig points at the remote auth/product HTTP service.
type RemoteConfig struct {
	BaseURL string   `yaml:"base_url" mapstructure:"base_url"`
	Timeout Duration `yaml:"timeout" mapstructure:"timeout"`
}

// WebConfig configures the local console HTTP facade.
type WebConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Port      int    `yaml:"port" mapstructure:"port"`
	StaticDir string `yaml:"static_dir" mapstructure:"static_dir"`
}

type LogConfig struct {
	Level string `yaml:"log_level" mapstructure:"log_level"`
	Dir   string `yaml:"log_dir" mapstructure:"log_dir"`
	File  string `yaml:"log_file" mapstructure:"log_file"`
}

// StorageConfig selects the device-local durable store driver.
type StorageConfig struct {
	Driver string             `yaml:"driver" mapstructure:"driver"` // memory/sqlite/redis
	SQLite SQLiteStoreConfig  `yaml:"sqlite,omitempty" mapstructure:"sqlite"`
	Redis  RedisStoreConfig   `yaml:"redis,omitempty" mapstructure:"redis"`
}

type SQLiteStoreConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

type RedisStoreConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username,omitempty" mapstructure:"username"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `yaml:"db,omitempty" mapstructure:"db"`
	Prefix   string `yaml:"prefix,omitempty" mapstructure:"prefix"`
}

// ThumbnailConfig bounds accepted product thumbnail uploads.
type ThumbnailConfig struct {
	MaxFileSize  int64    `yaml:"max_file_size" mapstructure:"max_file_size"`
	AllowedTypes []string `yaml:"allowed_types" mapstructure:"allowed_types"`
}

type NotifyConfig struct {
	TTL Duration `yaml:"ttl" mapstructure:"ttl"`
}
