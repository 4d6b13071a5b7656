package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/posegraph/perf"
)

// cliState is shared by the commands of one invocation.
type cliState struct {
	configPath string
	logLevel   string
	logFormat  string
	cfg        perf.Config
	log        *perf.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:           "perfgraph",
		Short:         "Time pose-graph construction and shortest-path solves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := perf.LoadConfig(st.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = st.logLevel
			}
			level, err := perf.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.log, err = newLogger(cmd.ErrOrStderr(), st.logFormat, level)
			if err != nil {
				return err
			}
			st.log.Debug("configuration loaded", "path", st.configPath)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&st.logFormat, "log-format", "auto", "log format: auto, text, json")

	root.AddCommand(newListCmd(st), newRunCmd(st))
	return root
}

func newListCmd(st *cliState) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := graphRegistry(st.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range reg.Filter(filter) {
				fmt.Fprintf(out, "%-50s arg=%d reps=%d\n", c.Name, c.Arg, c.Reps)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "only cases whose name contains this")
	return cmd
}

func newRunCmd(st *cliState) *cobra.Command {
	var (
		filter string
		seed   int64
		scale  float64
		format string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered cases and print their mean times",
		Long: `Run every case whose name contains --filter, in registration order.

Flags override the config file, which overrides the defaults.
Examples:
  perfgraph run --filter dijkstra
  perfgraph run --config perf.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := st.cfg
			flags := cmd.Flags()
			if flags.Changed("filter") {
				cfg.Filter = filter
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("scale") {
				cfg.RepeatScale = scale
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reg, err := graphRegistry(cfg)
			if err != nil {
				return err
			}
			runner := perf.NewRunner(reg,
				perf.WithLogger(st.log),
				perf.WithRepeatScale(cfg.RepeatScale),
			)
			reports, runErr := runner.Run(cmd.Context(), cfg.Filter)
			if err := writeReports(cmd.OutOrStdout(), cfg.Format, reports); err != nil {
				return err
			}
			return runErr
		},
	}
	f := cmd.Flags()
	f.StringVar(&filter, "filter", "", "only cases whose name contains this")
	f.Int64Var(&seed, "seed", perf.DefaultSeed, "seed of the random graphs")
	f.Float64Var(&scale, "scale", 1, "repetition multiplier")
	f.StringVar(&format, "format", perf.FormatText, "output format: text or json")
	return cmd
}

// newLogger builds the CLI logger. "auto" writes text to a terminal and
// JSON anywhere else.
func newLogger(w io.Writer, format string, level slog.Level) (*perf.Logger, error) {
	switch format {
	case "auto":
		if isTerminal(w) {
			return perf.NewTextLogger(w, level), nil
		}
		return perf.NewJSONLogger(w, level), nil
	case "text":
		return perf.NewTextLogger(w, level), nil
	case "json":
		return perf.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("log format %q: %w", format, perf.ErrInvalidConfig)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func graphRegistry(cfg perf.Config) (*perf.Registry, error) {
	reg := perf.NewRegistry()
	if err := perf.RegisterGraphCases(reg, cfg.Seed, cfg.EdgeDensity); err != nil {
		return nil, err
	}
	return reg, nil
}

type jsonReport struct {
	perf.Report
	Error string `json:"error,omitempty"`
}

func writeReports(w io.Writer, format string, reports []perf.Report) error {
	if format == perf.FormatJSON {
		rows := make([]jsonReport, len(reports))
		for i, r := range reports {
			rows[i] = jsonReport{Report: r}
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
