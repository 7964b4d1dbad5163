// Package logging builds the logr.Logger used by logsort.
package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the name given to the root logger.
const Name = "logsort"

// New returns a logger that writes human readable lines to w. Messages below level are dropped;
// logr's V(1) maps to zapcore.DebugLevel.
func New(w io.Writer, level zapcore.Level) logr.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zapr.NewLogger(zap.New(core, zap.Development())).WithName(Name)
}
