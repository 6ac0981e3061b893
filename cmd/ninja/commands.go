package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/ninja-client/internal/app"
	"github.com/samvad-hq/ninja-client/pkg/ninja"
)

func newCurrencyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [Currency|Fragment]",
		Short: "Print a currency overview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := ninja.Currency
			if len(args) == 1 {
				t, err := ninja.ParseCurrencyOverviewType(args[0])
				if err != nil {
					return err
				}
				typ = t
			}

			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			res, err := rt.clients.Economy.CurrencyOverview(ctx, typ)
			return printResult(cmd.OutOrStdout(), res, err)
		},
	}
}

func newItemsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "items <type>",
		Short: "Print an item overview (e.g. UniqueJewel, Scarab)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := ninja.ParseItemOverviewType(args[0])
			if err != nil {
				return err
			}

			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			res, err := rt.clients.Economy.ItemOverview(ctx, typ)
			return printResult(cmd.OutOrStdout(), res, err)
		},
	}
}

func newBuildsCmd(opts *rootOptions) *cobra.Command {
	var (
		ladder      string
		timeMachine string
	)
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "Print a build overview for the experience or delve ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tm, err := parseTimeMachine(timeMachine)
			if err != nil {
				return err
			}
			var typ ninja.LadderType
			switch strings.ToLower(ladder) {
			case "exp", "experience":
				typ = ninja.ExperienceLadder
			case "delve", "depthsolo":
				typ = ninja.DelveSoloLadder
			default:
				return fmt.Errorf("unknown ladder %q", ladder)
			}

			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			res, err := rt.clients.Builds.BuildOverview(ctx, typ, tm)
			return printResult(cmd.OutOrStdout(), res, err)
		},
	}
	cmd.Flags().StringVar(&ladder, "ladder", "exp", "ladder: exp or delve")
	cmd.Flags().StringVar(&timeMachine, "timemachine", "", "historical snapshot: day-1..day-6 or week-1..week-16")
	return cmd
}

func newCharacterCmd(opts *rootOptions) *cobra.Command {
	var timeMachine string
	cmd := &cobra.Command{
		Use:   "character <account> <name>",
		Short: "Print one character from the experience ladder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := parseTimeMachine(timeMachine)
			if err != nil {
				return err
			}

			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			res, err := rt.clients.Builds.GetCharacter(ctx, args[0], args[1], tm)
			return printResult(cmd.OutOrStdout(), res, err)
		},
	}
	cmd.Flags().StringVar(&timeMachine, "timemachine", "", "historical snapshot: day-1..day-6 or week-1..week-16")
	return cmd
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var (
		only        []string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch economy overviews and publish them to the configured sinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overviews := app.AllOverviews()
			if len(only) > 0 {
				overviews = overviews[:0:0]
				for _, name := range only {
					o, err := app.ParseOverview(name)
					if err != nil {
						return err
					}
					overviews = append(overviews, o)
				}
			}

			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			fanout, err := app.LoadFanout(ctx, rt.cfg.PublishersFile, rt.log)
			if err != nil {
				return err
			}
			defer fanout.Close()

			if !cmd.Flags().Changed("concurrency") {
				concurrency = rt.cfg.SnapshotConcurrency
			}
			snap := app.NewSnapshotter(rt.clients.Economy, fanout, concurrency, rt.log)
			summary, runErr := snap.Run(ctx, overviews)
			if err := writeJSON(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
			if runErr != nil && rt.cfg.RaiseErrors {
				return runErr
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "overview names to fetch (default: all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel fetches (default: snapshot_concurrency)")
	return cmd
}
