package log_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/mjml/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Info("parsed", slog.String("file", "index.mjml"), slog.Int("warnings", 2))
	logger.Debug("hidden below the default level")

	// Output:
	// level=INFO msg=parsed file=index.mjml warnings=2
}

func ExampleLogger_With() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace)).
		With(slog.String("origin", "header.mjml"))

	logger.Trace("include resolved")

	// Output:
	// {"level":"TRACE","msg":"include resolved","origin":"header.mjml"}
}

func ExampleParseLevel() {
	for _, s := range []string{"trace", "WARN", "bogus"} {
		fmt.Println(log.ParseLevel(s))
	}

	// Output:
	// trace
	// warn
	// info
}
