package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/theketchio/logsort/cmd/logsort/configuration"
	"github.com/theketchio/logsort/cmd/logsort/output"
	"github.com/theketchio/logsort/internal/csvfile"
	logerrors "github.com/theketchio/logsort/internal/errors"
	"github.com/theketchio/logsort/internal/sorter"
)

type sortSummary struct {
	Input  string `column:"INPUT"`
	Output string `column:"OUTPUT"`
	Rows   int    `column:"ROWS"`
}

// sortLog reads cfg.InputPath, sorts its rows by field 0 and writes them to cfg.OutputPath.
// Nothing is written when the input cannot be read or holds a row without fields.
func sortLog(cfg configuration.Configuration, out io.Writer, log logr.Logger) error {
	log = log.WithValues("input", cfg.InputPath, "output", cfg.OutputPath)

	ds, err := csvfile.Read(cfg.InputPath, cfg.Delimiter)
	if err != nil {
		return err
	}
	log.V(1).Info("parsed input", "rows", len(ds))

	if err := sorter.Sort(ds); err != nil {
		return withPath(err, cfg.InputPath)
	}
	log.V(1).Info("sorted rows")

	if err := csvfile.Write(cfg.OutputPath, cfg.Delimiter, ds); err != nil {
		return err
	}
	log.Info("wrote sorted log", "rows", len(ds))

	return output.Write(sortSummary{
		Input:  cfg.InputPath,
		Output: cfg.OutputPath,
		Rows:   len(ds),
	}, out)
}

// withPath names path in err when the failure did not say which file it came from.
func withPath(err error, path string) error {
	var e *logerrors.Error
	if errors.As(err, &e) && e.Path == "" {
		e.Path = path
	}
	return err
}
