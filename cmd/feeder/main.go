package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/feeder/internal/cli"
	"github.com/julianstephens/feeder/internal/config"
	"github.com/julianstephens/feeder/internal/constants"
	"github.com/julianstephens/feeder/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Config directory (defaults to $FEEDER_CONFIG_DIR, then $XDG_CONFIG_HOME/feeder, then ~/.config/feeder)." type:"path" name:"config-dir"`
	Debug     bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive control panel." default:"1"`
	Serve    cli.ServeCmd    `cmd:"" help:"Serve the control panel over HTTP."`
	Feed     cli.FeedCmd     `cmd:"" help:"Feed once with the given settings."`
	Schedule cli.ScheduleCmd `cmd:"" help:"Show or edit feeding times."`
	History  cli.HistoryCmd  `cmd:"" help:"Show past feedings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Control panel for a pet feeder"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	dir, err := config.ResolveDir(CLI.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so debug output only goes to the log file there
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Debug,
		ConfigDir: dir,
		Quiet:     ctx.Command() == "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Out:    os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
