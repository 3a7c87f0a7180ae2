package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/repository"
	"github.com/ppcraft/close-variant-negatives-go/internal/shared/types"
	"github.com/ppcraft/close-variant-negatives-go/pkg/version"
)

// RunnerFunc executes the pipeline once configuration and arguments are
// resolved. Supplied by main so the driven adapters can be built from the
// loaded credentials.
type RunnerFunc func(ctx context.Context, cfg *types.Config, args *types.CLIArgs) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	runner     RunnerFunc
	version    string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    console,
		version:    versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "close-variant",
		Short:   "Convert exact (close variant) search queries into negative keywords",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Close Variant Negatives version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("date-range", "d", "LAST_7_DAYS", "Lookback window: a named range (e.g. LAST_7_DAYS) or an explicit YYYYMMDD,YYYYMMDD pair")
	rootCmd.PersistentFlags().StringP("campaign-filter", "f", "", "Only process campaigns whose name contains this substring (case-insensitive; empty matches all)")
	rootCmd.PersistentFlags().StringP("email", "e", "", "Email address the run report is sent to")
	rootCmd.PersistentFlags().Bool("email-only", true, "Only email the report; pass --email-only=false to actually add negative keywords")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for exported report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report export types: csv, json, pdf")
	rootCmd.PersistentFlags().String("dir", "", "Directory to save exported report files (default: current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetRunner sets the pipeline runner invoked by the root command.
func (app *CLIApp) SetRunner(runner RunnerFunc) {
	app.runner = runner
}

// Verbose reports whether debug logging was requested.
func (app *CLIApp) Verbose() bool {
	verbose, _ := app.rootCmd.Flags().GetBool("verbose")
	return verbose
}

// resolveConfig loads the configuration file, if one was given, and applies
// command-line overrides on top of it.
func (app *CLIApp) resolveConfig() (*types.Config, *types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	cfg := &types.Config{}
	hasFile := false
	if configFile, _ := flags.GetString("config-file"); configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		hasFile = true
	}

	// Flags override file values only when set on the command line, so a
	// config file can carry the day-to-day defaults. Without a file the
	// flag values (including their defaults) stand as given.
	if !hasFile || flags.Changed("date-range") || cfg.DateRange == "" {
		cfg.DateRange, _ = flags.GetString("date-range")
	}
	if !hasFile || flags.Changed("campaign-filter") {
		cfg.CampaignNameFilter, _ = flags.GetString("campaign-filter")
	}
	if !hasFile || flags.Changed("email") {
		cfg.Email, _ = flags.GetString("email")
	}
	if !hasFile || flags.Changed("email-only") {
		cfg.EmailOnly, _ = flags.GetBool("email-only")
	}
	if !hasFile || flags.Changed("report-name") {
		cfg.ReportName, _ = flags.GetString("report-name")
	}
	if !hasFile || flags.Changed("report-type") {
		cfg.ReportType, _ = flags.GetStringSlice("report-type")
	}
	if !hasFile || flags.Changed("dir") {
		cfg.Dir, _ = flags.GetString("dir")
	}

	configFile, _ := flags.GetString("config-file")
	args := &types.CLIArgs{
		ConfigFile:         configFile,
		DateRange:          cfg.DateRange,
		CampaignNameFilter: cfg.CampaignNameFilter,
		Email:              cfg.Email,
		EmailOnly:          cfg.EmailOnly,
		ReportName:         cfg.ReportName,
		ReportType:         cfg.ReportType,
		Dir:                cfg.Dir,
	}

	return cfg, args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cfg, cliArgs, err := app.resolveConfig()
	if err != nil {
		return err
	}

	if cfg.GoogleAds.CustomerID == "" {
		return types.ErrMissingCustomerID
	}

	ctx := context.Background()
	return app.runner(ctx, cfg, cliArgs)
}
