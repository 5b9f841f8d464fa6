// Package telemetry builds the zap.Logger every run is threaded
// through, tagging each one with a run ID so
// log lines from one interpreter invocation can be correlated.
package telemetry

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a *zap.Logger: a development config (human-readable,
// Debug level) when debug is true, otherwise a production config
// (JSON, Info level) writing to stderr either way so standard output
// stays reserved for the interpreted program's own output
// (Memory key 1). Every logger is tagged with a fresh run ID.
func New(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
