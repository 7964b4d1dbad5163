package main

import (
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/theketchio/logsort/cmd/logsort/configuration"
	logerrors "github.com/theketchio/logsort/internal/errors"
	"github.com/theketchio/logsort/internal/logging"
)

func main() {
	// Remove any flags that were added by libraries automatically.
	pflag.CommandLine = pflag.NewFlagSet("logsort", pflag.ExitOnError)

	log := logging.New(os.Stderr, zapcore.InfoLevel)

	cmd := newRootCmd(configuration.Default(), os.Stdout, log)
	if err := cmd.Execute(); err != nil {
		log.Error(err, "sort failed", "kind", logerrors.KindOf(err).String())
		os.Exit(1)
	}
}
