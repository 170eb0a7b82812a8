package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	FlagLogLevel  = "loglevel"
	FlagLogFormat = "logformat"
)

func RegisterLoggingFlags(cmd *cobra.Command) {
	EnumVar(cmd.PersistentFlags(), FlagLogLevel, []string{
		"warn",
		"debug",
		"info",
		"error",
	}, "set the log level")
	EnumVar(cmd.PersistentFlags(), FlagLogFormat, []string{"text", "json"}, "set the log format")
}

// GetBaseLogger builds the logger selected by the logging flags.  Logs are
// written to the error output so they never mix with command results.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	logLevel, err := GetLoggerLevel(cmd)
	if err != nil {
		return nil, err
	}

	format := cmd.Flag(FlagLogFormat).Value.String()
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: logLevel,
		})
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: logLevel,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return slog.New(handler), nil
}

func GetLoggerLevel(cmd *cobra.Command) (slog.Level, error) {
	logLevel, err := GetEnum(cmd.Flags(), FlagLogLevel)
	if err != nil {
		return slog.LevelWarn, err
	}
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", logLevel)
	}
	return level, nil
}
