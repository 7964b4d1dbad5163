package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/theketchio/logsort/cmd/logsort/configuration"
)

const rootHelp = `
Sort the rows of log.csv by their first field and write them to sorted_log.csv.

The first field is compared as a plain string. Rows with equal first fields keep
the order they had in log.csv. An empty line in log.csv has no first field and
stops the sort before sorted_log.csv is written.
`

// newRootCmd returns the logsort command. It takes no arguments.
func newRootCmd(cfg configuration.Configuration, out io.Writer, log logr.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "logsort",
		Short:         "Sort log.csv by its first field",
		Long:          rootHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sortLog(cfg, out, log)
		},
	}
	return cmd
}
