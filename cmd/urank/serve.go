package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/corpus/memory"
	"github.com/mycok/uRank/metrics"
	"github.com/mycok/uRank/service"
	"github.com/mycok/uRank/service/frontend"
	"github.com/mycok/uRank/service/ranker"
)

type serveOptions struct {
	listenAddr        string
	updateInterval    time.Duration
	maxResultsPerPage int
}

func newServeCmd(opts *options) *cobra.Command {
	serveOpts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve queries over HTTP and periodically rebuild the rankings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcGroup, err := configureServices(opts, serveOpts)
			if err != nil {
				opts.logger.WithField("err", err).Error("shutting down due to an error")

				return err
			}

			return runServices(cmd.Context(), svcGroup, opts.logger)
		},
	}

	cmd.Flags().StringVar(&serveOpts.listenAddr, "listen", ":8080", "Address to listen on for incoming requests")
	cmd.Flags().DurationVar(&serveOpts.updateInterval, "update-interval", time.Hour, "Time between subsequent engine rebuilds")
	cmd.Flags().IntVar(&serveOpts.maxResultsPerPage, "max-results", 100, "Maximum number of results per search request")

	return cmd
}

// configureServices seeds an in-memory page store from the corpus file,
// if one was given, and wires the ranker and frontend services around it.
func configureServices(opts *options, serveOpts *serveOptions) (*service.Group, error) {
	store := memory.NewStore()
	if opts.corpusPath != "" {
		if err := seedStore(store, opts.corpusPath); err != nil {
			return nil, err
		}
	}

	reg := metrics.NewRegistry()

	rankerSvc, err := ranker.New(ranker.Config{
		Source:         store,
		Engine:         opts.engineConfig(),
		UpdateInterval: serveOpts.updateInterval,
		Metrics:        reg,
		Logger:         opts.logger.WithField("service", "ranker"),
	})
	if err != nil {
		return nil, err
	}

	frontendSvc, err := frontend.New(frontend.Config{
		EngineAPI:         rankerSvc,
		PageStore:         store,
		ListenAddr:        serveOpts.listenAddr,
		MaxResultsPerPage: serveOpts.maxResultsPerPage,
		Metrics:           reg,
		Logger:            opts.logger.WithField("service", "frontend"),
	})
	if err != nil {
		return nil, err
	}

	return &service.Group{
		Services: []service.Service{rankerSvc, frontendSvc},
		Logger:   opts.logger,
	}, nil
}

func seedStore(store corpus.Store, path string) error {
	set, err := (&corpus.FileSource{Path: path}).Snapshot()
	if err != nil {
		return err
	}

	for _, uri := range set.URIs() {
		p, _ := set.Page(uri)
		if err := store.UpsertPage(&corpus.Document{URI: p.URI, Words: p.Words, Links: p.Links}); err != nil {
			return err
		}
	}

	return nil
}

func runServices(parent context.Context, svcGroup *service.Group, logger *logrus.Entry) error {
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancelFn := context.WithCancel(parent)
	defer cancelFn()

	// Listen for os signals and trigger a graceful shutdown.
	go func() {
		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, syscall.SIGINT, syscall.SIGHUP)
		defer signal.Stop(signalCh)

		select {
		case s := <-signalCh:
			logger.WithField("signal", s.String()).Info("shutting down due to os signal")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	if err := svcGroup.Execute(ctx); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")

		return err
	}

	logger.Info("shutdown complete")

	return nil
}
