package cli

import "log/slog"

type RootArgs struct {
	logLevel  *string
	logFormat *string
	logger    *slog.Logger
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

// GetLogger returns the logger configured for the running command, or
// [slog.Default] before the root command has run.
func (a *RootArgs) GetLogger() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}

	return a.logger
}
