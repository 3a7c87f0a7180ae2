package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ppcraft/close-variant-negatives-go/internal/adapter/driven/config"
	"github.com/ppcraft/close-variant-negatives-go/internal/adapter/driven/export"
	"github.com/ppcraft/close-variant-negatives-go/internal/adapter/driven/googleads"
	"github.com/ppcraft/close-variant-negatives-go/internal/adapter/driven/mail"
	"github.com/ppcraft/close-variant-negatives-go/internal/adapter/driving/cli"
	"github.com/ppcraft/close-variant-negatives-go/internal/application/usecase"
	"github.com/ppcraft/close-variant-negatives-go/internal/shared/types"
	"github.com/ppcraft/close-variant-negatives-go/pkg/console"
	"github.com/ppcraft/close-variant-negatives-go/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()

	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl)

	// The Google Ads and SMTP adapters need the loaded credentials, so they
	// are built once the CLI has resolved the configuration.
	app.SetRunner(func(ctx context.Context, cfg *types.Config, args *types.CLIArgs) error {
		level := zerolog.InfoLevel
		if app.Verbose() {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		adsRepo := googleads.NewAdsRepository(cfg.GoogleAds, logger)
		mailRepo := mail.NewMailRepository(cfg.SMTP, logger)

		negativesUseCase := usecase.NewNegativesUseCase(
			adsRepo,
			exportRepo,
			mailRepo,
			consoleImpl,
		)

		return negativesUseCase.Run(ctx, args)
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
