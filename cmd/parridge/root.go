package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/parridge/parridge/dataset"
	"github.com/parridge/parridge/linear"
	"github.com/parridge/parridge/metrics"
	"github.com/parridge/parridge/pkg/errors"
	"github.com/parridge/parridge/pkg/log"
	"github.com/parridge/parridge/plotting"
)

// Config carries all CLI-parsed settings; the train and test entry
// points take it explicitly, there is no global state.
type Config struct {
	TrainData  string
	TestData   string
	BetaPath   string
	Lambda     float64
	MaxIter    int
	Eps        float64
	Partitions int
	Solver     string
	PlotPath   string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:          "parridge",
		Short:        "Parallel ridge regression over partitioned CSV data",
		Long:         "parridge estimates a linear model β over CSV records of the form x1,...,xd,y, either by gradient descent with backtracking line search or by solving the regularized normal equations, and evaluates a stored β by mean squared error.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.TrainData, "traindata", "", "input file containing (x,y) pairs, used to train a linear model")
	f.StringVar(&cfg.TestData, "testdata", "", "input file containing (x,y) pairs, used to test a linear model")
	f.StringVar(&cfg.BetaPath, "beta", "beta", "file where beta is stored (when training) and read from (when testing)")
	f.Float64Var(&cfg.Lambda, "lam", 0.0, "regularization parameter λ")
	f.IntVar(&cfg.MaxIter, "max_iter", 100, "maximum number of gradient descent iterations")
	f.Float64Var(&cfg.Eps, "eps", 0.01, "ε-tolerance: gradient descent terminates once ||∇F(β)||_2 < ε")
	f.IntVar(&cfg.Partitions, "N", 20, "number of partitions")
	f.StringVar(&cfg.Solver, "solver", "GD", "GD learns β via gradient descent, LS solves the normal equations")
	f.StringVar(&cfg.PlotPath, "plot", "", "optional image path for the convergence curves (GD only)")
	f.StringVar(&cfg.LogLevel, "log_level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(cfg *Config, out io.Writer) error {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, lvl)
	log.HookWarnings(logger)

	if cfg.TrainData == "" && cfg.TestData == "" {
		return errors.New("nothing to do: provide --traindata and/or --testdata")
	}
	if cfg.Solver != "GD" && cfg.Solver != "LS" {
		return errors.Newf("unknown solver %q: want GD or LS", cfg.Solver)
	}

	if cfg.TrainData != "" {
		if err := train(cfg, logger); err != nil {
			return err
		}
	}
	if cfg.TestData != "" {
		if err := test(cfg, logger, out); err != nil {
			return err
		}
	}
	return nil
}

func train(cfg *Config, logger zerolog.Logger) error {
	logger.Info().Str("path", cfg.TrainData).Int("partitions", cfg.Partitions).Msg("reading training data")
	data, err := dataset.Load(cfg.TrainData, cfg.Partitions)
	if err != nil {
		return err
	}
	logger.Info().
		Int("records", data.Count()).
		Int("features", data.Dim()).
		Float64("lambda", cfg.Lambda).
		Str("solver", cfg.Solver).
		Msg("training")

	rr := linear.NewRidgeRegression(
		linear.WithLambda(cfg.Lambda),
		linear.WithMaxIter(cfg.MaxIter),
		linear.WithEps(cfg.Eps),
		linear.WithLogger(logger),
	)

	switch cfg.Solver {
	case "GD":
		res, err := rr.FitGD(data)
		if err != nil {
			return err
		}
		logger.Info().
			Int("iterations", res.Iterations).
			Bool("converged", res.Converged).
			Float64("grad_norm", res.GradNorm).
			Dur("elapsed", res.Elapsed).
			Msg("gradient descent finished")
		if cfg.PlotPath != "" && len(rr.History) > 0 {
			if err := plotting.Convergence(rr.History, cfg.PlotPath); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.PlotPath).Msg("wrote convergence plot")
		}
	case "LS":
		if err := rr.FitLS(data); err != nil {
			return err
		}
		logger.Info().Msg("linear system solved")
	}

	logger.Info().Str("path", cfg.BetaPath).Msg("saving trained beta")
	return rr.SaveBeta(cfg.BetaPath)
}

func test(cfg *Config, logger zerolog.Logger, out io.Writer) error {
	logger.Info().Str("path", cfg.TestData).Int("partitions", cfg.Partitions).Msg("reading test data")
	data, err := dataset.Load(cfg.TestData, cfg.Partitions)
	if err != nil {
		return err
	}

	logger.Info().Str("path", cfg.BetaPath).Msg("reading beta")
	rr := linear.NewRidgeRegression()
	if err := rr.LoadBeta(cfg.BetaPath); err != nil {
		return err
	}

	mse, err := metrics.DatasetMSE(data, rr.BetaSlice())
	if err != nil {
		return err
	}
	logger.Info().
		Float64("mse", mse).
		Int("records", data.Count()).
		Msg("evaluation finished")

	_, err = fmt.Fprintf(out, "MSE is: %g\n", mse)
	return err
}
