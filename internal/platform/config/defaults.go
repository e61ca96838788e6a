package config

import "time"

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL: "https://api-teste-front-production.up.railway.app",
			Timeout: Duration(30 * time.Second),
		},
		Web: WebConfig{
			Enabled:   true,
			Port:      8080,
			StaticDir: "./web",
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "data/logs",
			File:  "console.log",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			SQLite: SQLiteStoreConfig{
				Dir: "./data",
			},
		},
		Thumbnail: ThumbnailConfig{
			MaxFileSize:  10 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
		Notify: NotifyConfig{
			TTL: Duration(5 * time.Second),
		},
	}
}
