// Package cli contains the command line interface for mjml.
//
// # Usage
//
//	mjml [flags] [check] [FILE ...]
//	mjml tokens FILE
//
// check is the default command. It parses each document concurrently and
// prints a report of errors and warnings; see package [cmd] for its flags.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory (for example ~/.config/mjml/config.yaml), or from the file named
// by --config. Nested keys are joined with "-" and may be scoped to a
// command:
//
//	log:
//	  level: debug
//	check:
//	  format: json
//	  include-dir: [partials]
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output or indent JSON output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o mjml .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/mjml/pprof)
//
// # Examples
//
//	# Check templates, resolving includes from ./partials
//	mjml check -I partials emails/*.mjml
//
//	# Only errors, as JSON
//	mjml -f json --filter 'severity == "error"' emails/*.mjml
//
//	# CPU profile of a large batch
//	mjml --pprof-mode=cpu check -j 8 emails/*.mjml
package cli
