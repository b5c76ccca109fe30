package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"quinzena/internal/cli"
	"quinzena/internal/cli/goals"
	"quinzena/internal/cli/payments"
	"quinzena/internal/cli/settings"
	"quinzena/internal/cli/system"
	"quinzena/internal/constants"
	"quinzena/internal/errors"
	"quinzena/internal/logger"
	"quinzena/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json path selects the JSON document store; anything else is opened as SQLite." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd   `cmd:"" help:"Initialize quinzena storage."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Summary  cli.SummaryCmd   `cmd:"" help:"Show the monthly financial summary."`
	Payday   cli.PaydayCmd    `cmd:"" help:"Check for a pending payday alert."`
	Payment struct {
		Add    payments.PaymentAddCmd    `cmd:"" help:"Add a payment day."`
		Edit   payments.PaymentEditCmd   `cmd:"" help:"Edit a payment day."`
		Delete payments.PaymentDeleteCmd `cmd:"" help:"Remove a payment day."`
		List   payments.PaymentListCmd   `cmd:"" help:"List payment days."`
	} `cmd:"" help:"Manage payment days."`
	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a savings goal."`
		Fund   goals.GoalFundCmd   `cmd:"" help:"Add money to a savings goal."`
		Delete goals.GoalDeleteCmd `cmd:"" help:"Remove a savings goal."`
		List   goals.GoalListCmd   `cmd:"" help:"List savings goals."`
	} `cmd:"" help:"Manage savings goals."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a pending payday alert to the tray helper."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal payday and savings tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// The init command handles its own storage lifecycle.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
