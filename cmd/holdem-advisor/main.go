package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/poker"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`
	Config  string           `help:"Path to HCL config file" default:"holdem-advisor.hcl" type:"path"`

	Advise AdviseCmd `cmd:"" default:"withargs" help:"Evaluate a hand and print play advice"`
	Batch  BatchCmd  `cmd:"" help:"Evaluate a file of scenarios"`
	Serve  ServeCmd  `cmd:"" help:"Run the WebSocket advice service"`
	Tui    TuiCmd    `cmd:"" help:"Interactive advisor"`
}

// runContext carries the shared pieces into subcommand Run methods
type runContext struct {
	logger  *log.Logger
	cfg     *config.Config
	advisor *advisor.Advisor
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-advisor"),
		kong.Description("Texas Hold'em hand strength evaluation and play advice"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)

	adv := advisor.New(poker.NewEvaluator(), cfg.ToStrategy(), logger)

	err = ctx.Run(&runContext{
		logger:  logger,
		cfg:     cfg,
		advisor: adv,
	})
	ctx.FatalIfErrorf(err)
}
