// Package log is a small leveled logger built on [log/slog].
//
// A [Logger] is configured once with functional options and is immutable
// afterwards; [Logger.Wrap] and [Logger.With] derive new loggers.
// The zero Logger discards everything.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"))
//	logger.Info("parsed", slog.String("file", name))
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-element parser
// detail. Level names are lowercase in styled output and uppercase in plain
// text and JSON.
//
// # Formats
//
// [FormatText] and [FormatJSON] are available, each plain or styled.
// Styled text colors keys and values with lipgloss, and color is disabled
// when the output is not a terminal. Styled JSON indents each record.
//
// # Package-level logger
//
// The functions [Info], [Debug] and friends use a process-wide logger that
// writes to standard error. Reconfigure it with [Config] or replace it with
// [SetDefault].
package log
