package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/eshaffer321/komisi/internal/cli"
	"github.com/eshaffer321/komisi/internal/infrastructure/config"
	"github.com/eshaffer321/komisi/internal/infrastructure/logging"
)

// CLI represents the main CLI application
type CLI struct {
	configFile string
	verbose    bool
}

func main() {
	app := &CLI{}

	// Global flags
	flag.StringVar(&app.configFile, "config", "", "Configuration file path")
	flag.BoolVar(&app.verbose, "verbose", false, "Enable verbose logging")
	flag.Usage = printUsage
	flag.Parse()

	// Get subcommand
	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	subcommand := args[0]
	subArgs := args[1:]

	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	// Bootstrap logger until the config says otherwise
	bootstrap := logging.NewLoggerWithSystem(config.LoggingConfig{Level: levelFor(app.verbose, "info"), Format: "text"}, "cli")
	cfg := loadConfig(app.configFile, bootstrap)

	loggingCfg := cfg.Observability.Logging
	loggingCfg.Level = levelFor(app.verbose, loggingCfg.Level)
	logger := logging.NewLoggerWithSystem(loggingCfg, "cli")

	// Route to subcommand
	var err error
	switch subcommand {
	case "calculate":
		err = handleCalculateCommand(subArgs, cfg, logger)
	case "serve":
		err = handleServeCommand(subArgs, cfg, app.verbose)
	case "roster":
		err = handleRosterCommand(subArgs, cfg, logger)
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, cli.ErrInput) && !errors.Is(err, flag.ErrHelp) {
			logger.Error("command failed", "command", subcommand, "error", err)
		}
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("komisi - property sale commission calculator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  komisi [global options] <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  calculate -price N -lead NAME [-lead NAME ...] -telemarketing NAME -conversion NAME [-date YYYY-MM-DD] [-json]")
	fmt.Println("  serve [-port N]                 Run the HTTP API")
	fmt.Println("  roster list                     Show the configured sales roster")
	fmt.Println("  roster import -from FILE        Replace the SQLite roster with a YAML roster file")
	fmt.Println()
	fmt.Println("Global Options:")
	fmt.Println("  -config string      Configuration file path")
	fmt.Println("  -verbose            Enable verbose logging")
}

func levelFor(verbose bool, level string) string {
	if verbose {
		return "debug"
	}
	return level
}

func loadConfig(configFile string, logger *slog.Logger) *config.Config {
	if configFile == "" {
		// Try to find config file
		candidates := []string{"config.yaml", "config.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate
				break
			}
		}
	}

	if configFile == "" {
		logger.Debug("no config file found, using environment variables")
		cfg := config.LoadFromEnv()
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		return cfg
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error("failed to load config", "path", configFile, "error", err)
		os.Exit(1)
	}

	return cfg
}

func handleCalculateCommand(args []string, cfg *config.Config, logger *slog.Logger) error {
	flags, err := cli.ParseCalculateFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	return cli.RunCalculate(context.Background(), cfg, flags, logger, os.Stdout)
}

func handleServeCommand(args []string, cfg *config.Config, verbose bool) error {
	flags, err := cli.ParseServeFlags(args, cfg.Server.Port, os.Stderr)
	if err != nil {
		return err
	}
	return cli.RunServe(cfg, flags, verbose)
}

func handleRosterCommand(args []string, cfg *config.Config, logger *slog.Logger) error {
	if len(args) == 0 {
		fmt.Println("Roster commands:")
		fmt.Println("  list                 Show the configured sales roster")
		fmt.Println("  import -from FILE    Replace the SQLite roster with a YAML roster file")
		return cli.ErrInput
	}

	ctx := context.Background()
	switch args[0] {
	case "list":
		return cli.RunRosterList(ctx, cfg, os.Stdout)
	case "import":
		flags, err := cli.ParseRosterImportFlags(args[1:], os.Stderr)
		if err != nil {
			return err
		}
		return cli.RunRosterImport(ctx, cfg, flags, logger, os.Stdout)
	default:
		fmt.Printf("Unknown roster command: %s\n", args[0])
		return cli.ErrInput
	}
}
