// Command nqueens runs the evolutionary N-Queens solvers from the command
// line: a single run with console output, or a parameter sweep appending
// rows to summary.csv.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/nqueens/config"
	"github.com/lixenwraith/nqueens/report"
	"github.com/lixenwraith/nqueens/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nqueens",
		Short:         "Evolutionary N-Queens solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newSweepCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		n          int
		algorithm  string
		seed       uint64
		debug      bool
		configPath string
		csvPath    string
		noPrint    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [n [algorithm [seed [debug]]]]",
		Short: "Solve one board and print the result",
		Long: "Solve one n-by-n board. Positional arguments mirror the legacy driver\n" +
			"invocation (n algorithm seed debug) and override the flags.",
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyPositional(args, &n, &algorithm, &seed, &debug); err != nil {
				return err
			}
			setupLogging(debug)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if algorithm != "" {
				cfg.Algorithm = algorithm
			}
			if seed != 0 {
				cfg.Seed = seed
			}

			s, err := solver.New(cfg.Algorithm, cfg.Options())
			if err != nil {
				return err
			}

			slog.Debug("starting run", "n", n, "algorithm", cfg.Algorithm, "seed", cfg.Seed)
			result, err := s.Solve(cmd.Context(), n)
			if err != nil {
				return err
			}

			fmt.Println(result.Summary())
			if !noPrint {
				printBoard(result.BestState)
			}
			slog.Debug("run finished",
				"seed", result.Seed,
				"conflicts", result.Conflicts,
				"generations", result.Generations,
				"reinitializations", result.Reinitializations)

			if csvPath != "" {
				if err := appendResult(csvPath, result); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "size", "n", 8, "board size")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Genetic or Tournament")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "master seed (0 = random)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "append the result to this CSV file")
	cmd.Flags().BoolVar(&noPrint, "no-print", false, "skip board rendering")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		sizes      []int
		algorithms []string
		seeds      int
		configPath string
		csvPath    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a grid of (n, algorithm, seed) combinations and export CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debug)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if csvPath == "" {
				csvPath = cfg.CSVPath
			}

			w, err := report.OpenCSV(csvPath)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, n := range sizes {
				for _, algorithm := range algorithms {
					for seed := 0; seed < seeds; seed++ {
						if err := sweepOne(cmd.Context(), cfg, w, n, algorithm, uint64(seed)+1); err != nil {
							return err
						}
					}
				}
			}
			slog.Info("sweep complete", "csv", csvPath)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{4, 6, 8, 10, 12, 14, 16, 18, 20, 24, 32, 50, 64, 80}, "board sizes")
	cmd.Flags().StringSliceVar(&algorithms, "algorithms", []string{solver.AlgorithmElitist, solver.AlgorithmTournament}, "algorithms to run")
	cmd.Flags().IntVar(&seeds, "seeds", 100, "seeds per combination (1..seeds)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "output CSV path (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func sweepOne(ctx context.Context, cfg config.Config, w *report.Writer, n int, algorithm string, seed uint64) error {
	opts := cfg.Options()
	opts.Seed = seed

	s, err := solver.New(algorithm, opts)
	if err != nil {
		return err
	}
	result, err := s.Solve(ctx, n)
	if err != nil {
		return err
	}

	slog.Info("run finished",
		"n", n,
		"algorithm", algorithm,
		"seed", seed,
		"conflicts", result.Conflicts,
		"generations", result.Generations,
		"elapsed", result.Elapsed)
	return w.WriteResult(result)
}

// applyPositional maps the legacy driver argument order onto the flags.
func applyPositional(args []string, n *int, algorithm *string, seed *uint64, debug *bool) error {
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid board size %q", args[0])
		}
		*n = v
	}
	if len(args) > 1 {
		*algorithm = args[1]
	}
	if len(args) > 2 {
		v, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", args[2])
		}
		*seed = v
	}
	if len(args) > 3 {
		v, err := strconv.ParseBool(strings.ToLower(args[3]))
		if err != nil {
			return fmt.Errorf("invalid debug flag %q", args[3])
		}
		*debug = v
	}
	return nil
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// printBoard renders the placement as a Q/. grid, one row per line.
func printBoard(state []int) {
	var sb strings.Builder
	for _, col := range state {
		for c := 0; c < len(state); c++ {
			if c == col {
				sb.WriteString("Q ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func appendResult(path string, result *solver.RunResult) error {
	w, err := report.OpenCSV(path)
	if err != nil {
		return err
	}
	if err := w.WriteResult(result); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
