package cliapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
)

// StopTimeout bounds how long a Lifecycle gets to shut down after an interrupt.
var StopTimeout = 10 * time.Second

type Lifecycle interface {
	// Start starts a service. A service only fully starts once, and does not restart.
	Start(ctx context.Context) error
	// Stop stops a service gracefully.
	// The ctx can limit how much time is spent on a graceful shutdown.
	Stop(ctx context.Context) error
	// Stopped determines if the service was stopped with Stop.
	Stopped() bool
}

// LifecycleAction instantiates a Lifecycle based on a CLI context.
// The close argument may be called by the service to shut itself down,
// the same way an interrupt signal would.
type LifecycleAction func(ctx *cli.Context, close context.CancelCauseFunc) (Lifecycle, error)

var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// LifecycleCmd turns a LifecycleAction into a blocking CLI action:
// the service is created and started, and then stopped once an interrupt
// arrives, the app context is cancelled, or the service closes itself.
func LifecycleCmd(fn LifecycleAction) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		hostCtx := cliCtx.Context
		if hostCtx == nil {
			hostCtx = context.Background()
		}
		sigCtx, stopSignals := signal.NotifyContext(hostCtx, interruptSignals...)
		defer stopSignals()

		appCtx, appCancel := context.WithCancelCause(sigCtx)
		defer appCancel(nil)

		// initialize the service with the app context, so init can be interrupted
		cliCtx.Context = appCtx
		appLifecycle, err := fn(cliCtx, appCancel)
		if err != nil {
			return errors.Join(
				fmt.Errorf("failed to setup: %w", err),
				context.Cause(appCtx),
			)
		}

		if err := appLifecycle.Start(appCtx); err != nil {
			return errors.Join(
				fmt.Errorf("failed to start: %w", err),
				context.Cause(appCtx),
			)
		}

		<-appCtx.Done()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), StopTimeout)
		defer stopCancel()
		stopErr := appLifecycle.Stop(stopCtx)
		if stopErr != nil {
			return fmt.Errorf("failed to stop app: %w", stopErr)
		}
		if cause := context.Cause(appCtx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
		return nil
	}
}
