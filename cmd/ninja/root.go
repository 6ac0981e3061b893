package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/ninja-client/internal/app"
	"github.com/samvad-hq/ninja-client/internal/config"
	"github.com/samvad-hq/ninja-client/internal/logger"
	"github.com/samvad-hq/ninja-client/pkg/apiclient"
	"github.com/samvad-hq/ninja-client/pkg/ninja"
)

type rootOptions struct {
	configFile  string
	verbose     bool
	raiseErrors bool
	replay      bool
	league      string
}

// runtime holds what every subcommand needs after flags are parsed.
type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	clients *app.Clients
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ninja",
		Short:         "Query poe.ninja economy and builds data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	flags.BoolVar(&opts.verbose, "verbose", false, "log request and response details")
	flags.BoolVar(&opts.raiseErrors, "raise-errors", false, "fail on the first request error instead of printing it")
	flags.BoolVar(&opts.replay, "replay", false, "serve requests from the replay cassette, recording misses")
	flags.StringVar(&opts.league, "league", "", "league to query (overrides config)")

	cmd.AddCommand(
		newCurrencyCmd(opts),
		newItemsCmd(opts),
		newBuildsCmd(opts),
		newCharacterCmd(opts),
		newSnapshotCmd(opts),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the clients.
func setup(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("raise-errors") {
		cfg.RaiseErrors = opts.raiseErrors
	}
	if flags.Changed("replay") {
		cfg.UseReplayMode = opts.replay
	}
	if opts.league != "" {
		cfg.League = opts.league
	}

	log, err := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Verbose: cfg.Verbose,
		App:     cfg.AppName,
		Env:     cfg.Env,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.DebugObj("configuration loaded", "config", cfg)

	clients, err := app.NewClients(cfg, log)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, log: log, clients: clients}, nil
}

func (r *runtime) close() {
	_ = r.clients.Close()
	_ = logger.Close()
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// errRequestFailed marks a failure Result returned in non-raising mode.
var errRequestFailed = errors.New("request failed")

// printResult writes the success payload as JSON. A failure Result becomes
// an error so it reaches stderr and the exit status.
func printResult[T any](w io.Writer, res apiclient.Result[T], err error) error {
	if err != nil {
		return err
	}
	if fail, ok := res.Failure(); ok {
		return fmt.Errorf("%w: %s", errRequestFailed, fail.Message)
	}
	ok, _ := res.Success()
	return writeJSON(w, ok.Data)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseTimeMachine(s string) (ninja.TimeMachine, error) {
	tm := ninja.TimeMachine(s)
	if err := tm.Validate(); err != nil {
		return "", err
	}
	return tm, nil
}
