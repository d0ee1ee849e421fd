package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (API base URL, etc.)
// - default: Values common across all environments (timeouts, poll intervals)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Refresh RefreshConfig
	Toast   ToastConfig
	Log     LogConfig
	Site    SiteConfig
}

type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"5s"`
}

type StorageConfig struct {
	// Directory holding the persisted client state (cart snapshot,
	// dismissed announcements, chat session id).
	StateDir string `envconfig:"STATE_DIR" default:".storefront"`
}

type RefreshConfig struct {
	StoreConfigInterval   time.Duration `envconfig:"STORE_CONFIG_INTERVAL" default:"10m"`
	AnnouncementsInterval time.Duration `envconfig:"ANNOUNCEMENTS_INTERVAL" default:"5m"`
}

type ToastConfig struct {
	SweepInterval time.Duration `envconfig:"TOAST_SWEEP_INTERVAL" default:"100ms"`
	DefaultTTL    time.Duration `envconfig:"TOAST_DEFAULT_TTL" default:"2500ms"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type SiteConfig struct {
	// Public origin used when emitting absolute URLs (sitemap).
	Origin string `envconfig:"SITE_ORIGIN" default:"http://localhost:3000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8889",
			Timeout: 2 * time.Second,
		},
		Storage: StorageConfig{
			StateDir: ".storefront-test",
		},
		Refresh: RefreshConfig{
			StoreConfigInterval:   time.Minute,
			AnnouncementsInterval: time.Minute,
		},
		Toast: ToastConfig{
			SweepInterval: 10 * time.Millisecond,
			DefaultTTL:    2500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Site: SiteConfig{
			Origin: "http://localhost:3000",
		},
	}
}
