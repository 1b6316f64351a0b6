/*
	service package defines the long-running components of the uRank server
	and a group type that runs them side by side.
*/

package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Service is implemented by long-running uRank components.
type Service interface {
	// Name returns the name of the service.
	Name() string

	// Run executes the service and blocks until the context gets cancelled
	// or an error occurs.
	Run(context.Context) error
}

// Group runs a set of services that share a lifetime. The failure of any
// member stops the others.
type Group struct {
	Services []Service

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// Execute runs every service of the group with a shared context and blocks
// until all of them have exited. The services are asked to stop when the
// context is cancelled or one of them fails. A service that panics is
// treated as failed. The errors of all failed services are returned
// together.
func (g *Group) Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(g.Services) == 0 {
		return nil
	}

	logger := g.Logger
	if logger == nil {
		logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		err error
	)

	wg.Add(len(g.Services))
	for _, svc := range g.Services {
		go func(svc Service) {
			defer wg.Done()

			startedAt := time.Now()
			runErr := runService(runCtx, svc)
			svcLogger := logger.WithFields(logrus.Fields{
				"service": svc.Name(),
				"uptime":  time.Since(startedAt).String(),
			})

			if runErr == nil {
				svcLogger.Debug("service exited")

				return
			}

			svcLogger.WithField("err", runErr).Error("service failed; stopping group")

			mu.Lock()
			err = multierror.Append(err, fmt.Errorf("%s: %w", svc.Name(), runErr))
			mu.Unlock()

			cancelFn()
		}(svc)
	}

	wg.Wait()

	return err
}

// runService converts a panic raised by svc into an error.
func runService(ctx context.Context, svc Service) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return svc.Run(ctx)
}
