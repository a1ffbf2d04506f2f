package logging

import "go.uber.org/zap"

// New creates the process logger and installs it as the zap global so
// packages can log through zap.S().
func New() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	zap.ReplaceGlobals(logger)
	return logger.Sugar()
}
