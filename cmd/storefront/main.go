package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"storefront/cmd/bootstrap"
	"storefront/internal/toast"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// startServices brings the background workers up for the lifetime of the
// process: config/announcement pollers, the toast sweeper, and the initial
// session/cart hydration that a page load would trigger.
func startServices(
	lc fx.Lifecycle,
	logger *slog.Logger,
	storeCfg *usecase.StoreConfigService,
	announcements *usecase.AnnouncementService,
	toasts *toast.Queue,
	auth *usecase.AuthService,
	chat *usecase.ChatService,
	cart *usecase.CartService,
) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("storefront client starting", "cart_items", cart.TotalItems())

			for _, run := range []func(context.Context){
				storeCfg.Run,
				announcements.Run,
				toasts.Run,
			} {
				wg.Add(1)
				go func(run func(context.Context)) {
					defer wg.Done()
					run(ctx)
				}(run)
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				auth.FetchMe(ctx)
				chat.Hydrate(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("storefront client stopping")
			cancel()
			wg.Wait()
			return nil
		},
	})
}

func main() {
	// Optional .env for local development; real environments set the vars.
	_ = godotenv.Load()

	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			startServices,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
}
