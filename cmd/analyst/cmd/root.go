// Package cmd holds the analyst CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"StockAnalyst/internal/collector"
	"StockAnalyst/internal/config"
	"StockAnalyst/internal/logger"
	"StockAnalyst/internal/pipeline"
)

// options is shared by the root command and its subcommands.
type options struct {
	cfgFile string
	symbol  string
	start   string
	end     string
	verbose bool

	cfg    *config.Config
	log    zerolog.Logger
	stderr io.Writer
	closer io.Closer
}

// close releases the log file. Its error goes to stderr only, since writing
// through o.log would reopen the rotated file.
func (o *options) close() {
	if o.closer == nil {
		return
	}
	if err := o.closer.Close(); err != nil && o.stderr != nil {
		clog := zerolog.New(o.stderr).Level(o.log.GetLevel()).With().Timestamp().Logger()
		clog.Debug().Err(err).Msg("close log file")
	}
	o.closer = nil
}

// Execute runs the root command.
func Execute() error {
	opts := &options{}
	defer opts.close()
	return newRootCmd(opts).Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "analyst",
		Short: "Stock price analysis pipeline",
		Long: `Stock price analysis pipeline: fetch -> preprocess -> predict -> report.

The report is printed to stdout. Logs go to stderr.

Examples:
  analyst --symbol AAPL
  analyst --symbol AAPL --start 2021-01-01 --end 2021-12-31
  analyst watch --symbol AAPL --cron "0 0 22 * * 1-5"`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAnalysis(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.symbol, "symbol", "", "stock symbol to analyse (e.g. AAPL)")
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	pf.StringVar(&opts.start, "start", "", "start date YYYY-MM-DD (default "+config.DefaultStart+"); a start after "+config.DefaultEnd+" also needs --end")
	pf.StringVar(&opts.end, "end", "", "end date YYYY-MM-DD (default "+config.DefaultEnd+")")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	_ = root.MarkPersistentFlagRequired("symbol")

	root.AddCommand(newWatchCmd(opts))
	return root
}

// init loads .env and the config file, applies flag overrides and builds the logger.
func (o *options) init(cmd *cobra.Command) error {
	if err := o.load(cmd); err != nil {
		// A bad config is not a usage error.
		cmd.SilenceUsage = true
		return err
	}
	return nil
}

func (o *options) load(cmd *cobra.Command) error {
	envErr := godotenv.Load()

	path := o.cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.DataSource.Start = o.start
	}
	if flags.Changed("end") {
		cfg.DataSource.End = o.end
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, closer, err := logger.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	o.cfg = cfg
	o.log = log
	o.stderr = cmd.ErrOrStderr()
	o.closer = closer

	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}
	log.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}

func (o *options) newPipeline() *pipeline.Pipeline {
	var fetcher collector.Fetcher = collector.NewSyntheticFetcher(logger.Component(o.log, "collector"))
	if ttl := o.cfg.DataSource.CacheTTL; ttl > 0 {
		fetcher = collector.NewCachedFetcher(fetcher, ttl, logger.Component(o.log, "cache"))
	}
	o.log.Debug().Str("data_source", fetcher.Name()).Msg("fetcher ready")
	return pipeline.New(fetcher, o.log, pipeline.WithRange(o.cfg.DataSource.Start, o.cfg.DataSource.End))
}

func runAnalysis(cmd *cobra.Command, opts *options) error {
	report, err := opts.newPipeline().Run(cmd.Context(), opts.symbol)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
	return err
}
