package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cronwhen/cronwhen"
	"github.com/cronwhen/cronwhen/api"
)

func main() {
	app := &cli.App{
		Name:  "cronwhen",
		Usage: "explain cron expressions and simulate their upcoming runs",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "validate one expression and print its summary and next runs",
				ArgsUsage: `"<expression>"`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   cronwhen.DefaultRunCount,
						Usage:   "number of upcoming run times to print",
					},
					&cli.IntFlag{
						Name:  "cap",
						Value: cronwhen.DefaultIterationCap,
						Usage: "maximum candidate minutes to scan",
					},
				},
				Action: runValidate,
			},
			{
				Name:      "lint",
				Usage:     "validate every entry of a crontab-style file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "concurrent validations (default: GOMAXPROCS)",
					},
				},
				Action: runLint,
			},
			{
				Name:   "serve",
				Usage:  "serve the validation HTTP API (configured via CRONWHEN_* env)",
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runValidate(c *cli.Context) error {
	expression := c.Args().First()
	if expression == "" {
		return cli.Exit("cronwhen: an expression argument is required", 2)
	}

	validator, err := cronwhen.NewValidator(
		cronwhen.WithRunCount(c.Int("count")),
		cronwhen.WithIterationCap(c.Int("cap")),
	)
	if err != nil {
		return err
	}

	result := validator.Validate(expression)
	if !result.OK() {
		return cli.Exit(result.Err.Error(), 1)
	}

	fmt.Println(result.Summary)
	for _, run := range result.NextRuns {
		fmt.Println(run.Format(time.RFC1123))
	}
	return nil
}

func runLint(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("cronwhen: a crontab file argument is required", 2)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	validator, err := cronwhen.NewValidator()
	if err != nil {
		return err
	}

	entries, err := validator.LintCrontab(c.Context, f, c.Int("jobs"))
	if err != nil {
		return err
	}

	failures := 0
	for _, entry := range entries {
		if entry.Result.OK() {
			fmt.Printf("%s:%d: ok: %s\n", path, entry.Line, entry.Result.Summary)
			continue
		}
		failures++
		fmt.Printf("%s:%d: %v\n", path, entry.Line, entry.Result.Err)
	}
	if failures > 0 {
		return cli.Exit(fmt.Sprintf("cronwhen: %d invalid entries", failures), 1)
	}
	return nil
}

func runServe(c *cli.Context) error {
	logger, err := newLogger(os.Getenv("CRONWHEN_LOG_LEVEL"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	cfg, err := api.LoadConfig(sugar)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.NewServer(cfg, sugar).Run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	outputLevel := zap.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		outputLevel = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(outputLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "time"
	return cfg.Build()
}
