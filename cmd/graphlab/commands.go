package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-graphlab/pkg/config"
	"github.com/dd0wney/cluso-graphlab/pkg/logging"
	"github.com/dd0wney/cluso-graphlab/pkg/metrics"
	"github.com/dd0wney/cluso-graphlab/pkg/parser"
	"github.com/dd0wney/cluso-graphlab/pkg/pipeline"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type rootOptions struct {
	configPath  string
	logLevel    string
	dumpMetrics bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "graphlab",
		Short:         "Community detection and learned index experiments",
		Long:          `graphlab runs two pipelines over plain-text input: social community detection by strength of connection, and a piecewise-linear learned index.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.dumpMetrics, "metrics", false, "print metrics to stderr when done")

	rootCmd.AddCommand(newCommunitiesCmd(opts))
	rootCmd.AddCommand(newIndexCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig layers file, environment and flags, in that order.
func (o *rootOptions) loadConfig(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics.Dump = o.dumpMetrics
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) newRunner(cmd *cobra.Command, cfg *config.Config) *pipeline.Runner {
	logger := logging.NewJSONLogger(cmd.ErrOrStderr(), cfg.LogLevel())
	runner := pipeline.NewRunner(cfg, logger, metrics.NewRegistry())
	logger.Debug("configuration loaded",
		logging.RunID(runner.RunID()),
		logging.Path(o.configPath),
		logging.String("command", cmd.Name()))
	return runner
}

func dumpMetrics(cmd *cobra.Command, cfg *config.Config, runner *pipeline.Runner) error {
	if !cfg.Metrics.Dump {
		return nil
	}
	return runner.Metrics().WriteText(cmd.ErrOrStderr())
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func newCommunitiesCmd(opts *rootOptions) *cobra.Command {
	var (
		ths float64
		thc int
	)
	cmd := &cobra.Command{
		Use:   "communities [file]",
		Short: "Detect core users, close friends and community hashtags",
		Long:  `Reads user lines, the friendship matrix and the "ths thc" line from file or standard input and prints the four stage report.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			var override parser.ThresholdOverride
			if cmd.Flags().Changed("ths") {
				override.Friendship = &ths
			}
			if cmd.Flags().Changed("thc") {
				override.Core = &thc
			}

			in, err := parser.Open(inputPath(args))
			if err != nil {
				return err
			}
			defer in.Close()

			runner := opts.newRunner(cmd, cfg)
			if _, err := runner.RunCommunities(cmd.Context(), in, cmd.OutOrStdout(), override); err != nil {
				return err
			}
			return dumpMetrics(cmd, cfg, runner)
		},
	}
	cmd.Flags().Float64Var(&ths, "ths", 0, "friendship threshold; overrides the input's")
	cmd.Flags().IntVar(&thc, "thc", 0, "core threshold; overrides the input's")
	return cmd
}

func newIndexCmd(opts *rootOptions) *cobra.Command {
	var (
		targetErr   int
		datasetSize int
		queries     []int64
	)
	cmd := &cobra.Command{
		Use:   "index [file]",
		Short: "Build a learned index and answer lookups",
		Long:  `Reads the dataset followed by query keys from file or standard input, fits segments within the target error and prints each lookup's trace.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("target-err") {
					cfg.Index.TargetError = targetErr
				}
				if cmd.Flags().Changed("dataset-size") {
					cfg.Index.DatasetSize = datasetSize
				}
			})
			if err != nil {
				return err
			}

			in, err := parser.Open(inputPath(args))
			if err != nil {
				return err
			}
			defer in.Close()

			runner := opts.newRunner(cmd, cfg)
			if _, err := runner.RunIndex(cmd.Context(), in, cmd.OutOrStdout(), queries); err != nil {
				return err
			}
			return dumpMetrics(cmd, cfg, runner)
		},
	}
	cmd.Flags().IntVarP(&targetErr, "target-err", "e", config.DefaultTargetError, "maximum prediction error per segment")
	cmd.Flags().IntVarP(&datasetSize, "dataset-size", "n", 0, "number of leading integers that form the dataset")
	cmd.Flags().Int64SliceVarP(&queries, "query", "q", nil, "extra key to look up (repeatable)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the graphlab version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "graphlab %s\n", Version)
		},
	}
}
