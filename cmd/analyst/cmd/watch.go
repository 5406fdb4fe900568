package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockAnalyst/internal/logger"
	"StockAnalyst/internal/scheduler"
)

func newWatchCmd(opts *options) *cobra.Command {
	var (
		cronSpec   string
		runOnStart bool
	)
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis on a cron schedule",
		Long: `Re-run the analysis on a cron schedule (seconds field enabled) and print
each report to stdout. Ctrl+C stops it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			log := logger.Component(opts.log, "scheduler")

			if !cmd.Flags().Changed("cron") {
				cronSpec = opts.cfg.Schedule.Cron
			}
			if os.Getenv("RUN_ON_START") == "true" {
				runOnStart = true
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched := scheduler.NewScheduler(ctx, opts.newPipeline(), opts.symbol, cmd.OutOrStdout(), log)
			if err := sched.Register(cronSpec); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if runOnStart {
				log.Info().Msg("run-on-start enabled, executing analysis now")
				sched.RunNow()
			}

			<-ctx.Done()
			log.Info().Msg("shutdown signal received, stopping")
			return nil
		},
	}
	watch.Flags().StringVar(&cronSpec, "cron", "", "cron spec with seconds field (default from config)")
	watch.Flags().BoolVar(&runOnStart, "run-on-start", false, "run the analysis once before the first tick")
	return watch
}
