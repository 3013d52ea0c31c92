package mjml

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// ParseReader reads a whole document from r and parses it with
// [ParseContextWithOptions]. Read failures are reported as [pkg.ErrReadInput].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts parser.AsyncOptions,
) (parser.Output[*Mjml], error) {
	// Pre-fetch input while earlier chunks are being copied.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return parser.Output[*Mjml]{}, pkg.ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseContextWithOptions(ctx, string(data), opts)
}
