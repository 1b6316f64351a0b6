package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/search"
)

const (
	appName = "uRank"
	appSHA  = "compiled-and-deployed-at"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by every sub-command.
type options struct {
	corpusPath string
	decay      float64
	epsilon    float64
	limit      int
	logLevel   string

	logger *logrus.Entry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "urank",
		Short: "Rank a closed web corpus by link authority and lexical relevance",
		Long: `uRank computes PageRank scores and TF-IDF vectors for a corpus of web
pages and answers combined relevance queries over them.

Examples:
  urank rank --corpus pages.yaml --top 10
  urank search --corpus pages.yaml golang concurrency
  urank serve --corpus pages.yaml --listen :8080`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logLevel, stderr)
			if err != nil {
				return err
			}

			opts.logger = logger

			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.corpusPath, "corpus", "", "Path to a YAML or JSON corpus file")
	flags.Float64Var(&opts.decay, "decay", search.DefaultConfig().DampingFactor, "PageRank damping factor in [0, 1]")
	flags.Float64Var(&opts.epsilon, "epsilon", search.DefaultConfig().Epsilon, "PageRank convergence threshold")
	flags.IntVar(&opts.limit, "limit", search.DefaultConfig().MaxIterations, "Maximum number of PageRank iterations")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newRankCmd(opts),
		newSearchCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

// newLogger instantiates the root logger shared by all components.
func newLogger(level string, out io.Writer) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetOutput(out)
	rootLogger.SetLevel(lvl)

	return rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"SHA":  appSHA,
		"host": host,
	}), nil
}

func (opts *options) engineConfig() search.Config {
	return search.Config{
		DampingFactor: opts.decay,
		Epsilon:       opts.epsilon,
		MaxIterations: opts.limit,
		Logger:        opts.logger.WithField("component", "engine"),
	}
}

// buildEngine loads the corpus file and builds a search engine from it.
func (opts *options) buildEngine() (*search.Engine, error) {
	if opts.corpusPath == "" {
		return nil, fmt.Errorf("--corpus flag is required")
	}

	set, err := (&corpus.FileSource{Path: opts.corpusPath}).Snapshot()
	if err != nil {
		return nil, err
	}

	return search.Build(set, opts.engineConfig())
}
