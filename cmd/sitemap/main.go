// Command sitemap fetches the product catalog and writes sitemap.xml. It is
// run as a build step and must never fail the build: any error downgrades the
// output to the static routes.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"storefront/internal/infra/adapter"
	"storefront/internal/infra/gateway"
	"storefront/internal/pkg/config"
	"storefront/internal/sitemap"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type sitemapConfig struct {
	OutPath string        `envconfig:"SITEMAP_OUT" default:"public/sitemap.xml"`
	Timeout time.Duration `envconfig:"SITEMAP_TIMEOUT" default:"7s"`
}

func main() {
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var smCfg sitemapConfig
	if err := envconfig.Process("", &smCfg); err != nil {
		logger.Warn("sitemap config invalid, using defaults", "error", err)
		smCfg = sitemapConfig{OutPath: "public/sitemap.xml", Timeout: 7 * time.Second}
	}

	ctx, cancel := context.WithTimeout(context.Background(), smCfg.Timeout)
	defer cancel()

	cfg, err := config.LoadConfig()
	origin := cfg.Site.Origin
	if origin == "" {
		origin = "http://localhost:3000"
	}

	var source sitemap.ProductSource
	if err != nil {
		logger.Warn("config unavailable, emitting static routes only", "error", err)
	} else {
		client, cerr := gateway.NewClient(cfg.API, logger)
		if cerr != nil {
			logger.Warn("gateway unavailable, emitting static routes only", "error", cerr)
		} else {
			source = adapter.New(client)
		}
	}

	var out []byte
	if source != nil {
		out = sitemap.Generate(ctx, source, origin, time.Now(), logger)
	} else {
		out = sitemap.GenerateStatic(origin, time.Now())
	}

	if err := os.MkdirAll(filepath.Dir(smCfg.OutPath), 0o755); err != nil {
		logger.Error("failed to create output dir", "path", smCfg.OutPath, "error", err)
		return
	}
	if err := os.WriteFile(smCfg.OutPath, out, 0o644); err != nil {
		logger.Error("failed to write sitemap", "path", smCfg.OutPath, "error", err)
		return
	}
	logger.Info("sitemap written", "path", smCfg.OutPath)
}
