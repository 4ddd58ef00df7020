package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/fngen/cmd"
	errUtils "github.com/cloudposse/fngen/errors"
	log "github.com/cloudposse/fngen/pkg/logger"
)

func main() {
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the command and returns an exit code, so deferred cleanup runs before exit.
func run() int {
	// An interrupt cancels the in-flight completion request instead of killing the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cmd.Cleanup()

	err := cmd.Execute(ctx)
	if err != nil {
		// Safe to call even if Sentry was never initialized.
		errUtils.CaptureError(err)

		formatted := errUtils.Format(err, cmd.ErrorFormatterConfig())
		_, _ = os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
