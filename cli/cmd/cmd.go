package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/klauspost/readahead"

	"github.com/ardnew/mjml/pkg"
)

// Kong variable identifiers supplied by package cli.
const (
	// JobsIdentifier holds the default number of concurrent checks.
	JobsIdentifier = "jobs"
	// MaxDepthIdentifier holds the default include depth limit.
	MaxDepthIdentifier = "maxIncludeDepth"
)

type (
	outputKey struct{}
	inputKey  struct{}
)

// WithOutput returns ctx carrying the writer that commands print to.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithInput returns ctx carrying the reader used for the "-" source.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the file argument that selects standard input.
const stdinSource = "-"

// Source is one document named on the command line.
type Source struct {
	Name string
	open func() (io.ReadCloser, error)
}

// Read returns the whole content of s.
func (s Source) Read() (string, error) {
	rc, err := s.open()
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err).With(slog.String("file", s.Name))
	}
	defer rc.Close()

	ra := readahead.NewReader(rc)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err).With(slog.String("file", s.Name))
	}

	return string(data), nil
}

// fileKey identifies a file by device and inode, so the same document named
// through a symlink or a different relative path is checked once.
type fileKey struct {
	dev uint64
	ino uint64
}

// Sources resolves file arguments in order.
//
// Files that resolve to the same device and inode are kept once. Every "-"
// collapses into a single standard input source placed last. Paths that
// cannot be resolved are kept so the failure is reported against them.
func Sources(ctx context.Context, paths []string) []Source {
	var (
		out   []Source
		stdin bool
		seen  = make(map[fileKey]struct{})
	)

	for _, p := range paths {
		if p == stdinSource {
			stdin = true

			continue
		}

		if key, ok := statKey(p); ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		out = append(out, Source{
			Name: p,
			open: func() (io.ReadCloser, error) { return os.Open(p) },
		})
	}

	if stdin {
		r := inputFrom(ctx)
		out = append(out, Source{
			Name: "<stdin>",
			open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		})
	}

	return out
}

func statKey(path string) (fileKey, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
