package learngl

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for the library and the examples.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// logger writes to stderr, where setup failures are reported as well.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// Logger returns the shared logger. The opengl backend and the example
// programs log through it so a single -v flag controls everything.
func Logger() *slog.Logger {
	return logger
}
