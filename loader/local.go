package loader

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/mjml/log"
	"github.com/ardnew/mjml/pkg"
)

// EnvIncludePath names the environment variable holding additional include
// directories, separated by [os.PathListSeparator].
const EnvIncludePath = "MJML_INCLUDE_PATH"

// Local resolves include paths against an ordered list of file systems,
// typically directories on disk. The first file system containing the path
// wins.
//
// Paths are slash-separated and relative. Absolute paths and paths that
// climb out of the search root with ".." are rejected with [ErrOutOfScope].
type Local struct {
	roots  []fs.FS
	names  []string
	logger log.Logger
}

// NewLocal returns a Local searching dirs in order.
func NewLocal(dirs ...string) *Local {
	l := &Local{}

	for _, dir := range dirs {
		l.roots = append(l.roots, os.DirFS(dir))
		l.names = append(l.names, dir)
	}

	return l
}

// NewFS returns a Local searching the given file systems in order.
func NewFS(fsys ...fs.FS) *Local {
	l := &Local{roots: fsys}

	for i := range fsys {
		l.names = append(l.names, "fs#"+strconv.Itoa(i))
	}

	return l
}

// WithLogger returns l logging each resolved path at debug level.
func (l *Local) WithLogger(logger log.Logger) *Local {
	l.logger = logger

	return l
}

// Dirs returns the names of the search roots in order.
func (l *Local) Dirs() []string { return l.names }

// Load implements [parser.IncludeLoader].
func (l *Local) Load(name string) (string, error) {
	return l.LoadContext(context.Background(), name)
}

// LoadContext implements [parser.AsyncIncludeLoader].
func (l *Local) LoadContext(ctx context.Context, name string) (string, error) {
	rel, err := cleanPath(name)
	if err != nil {
		return "", err
	}

	for i, root := range l.roots {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		data, err := fs.ReadFile(root, rel)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return "", pkg.ErrReadInput.Wrap(err).
				With(slog.String("path", name), slog.String("dir", l.names[i]))
		}

		l.logger.DebugContext(ctx, "include resolved",
			slog.String("path", name),
			slog.String("dir", l.names[i]),
			slog.Int("bytes", len(data)),
		)

		return string(data), nil
	}

	return "", notFound(name)
}

// cleanPath converts an include path to a path valid for [fs.FS].
func cleanPath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidPath.With(slog.String("path", name))
	}

	slashed := filepath.ToSlash(name)
	if path.IsAbs(slashed) || filepath.IsAbs(name) {
		return "", ErrOutOfScope.With(slog.String("path", name))
	}

	rel := path.Clean(slashed)
	if !fs.ValidPath(rel) {
		return "", ErrOutOfScope.With(slog.String("path", name))
	}

	return rel, nil
}

// SearchPath composes the include search path: dirs first, followed by the
// entries of [EnvIncludePath]. Only existing directories are kept.
func SearchPath(dirs ...string) []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(EnvIncludePath)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	return filepath.SplitList(list)
}

func isDir(p string) bool {
	info, err := os.Stat(p)

	return err == nil && info.IsDir()
}
