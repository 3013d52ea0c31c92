package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// ConfigFile is the base name of the command's YAML configuration file.
const ConfigFile = "config.yaml"

// DirMode is the permission mode for directories created by the command.
const DirMode os.FileMode = 0o700

// Prefix returns the identifier used for per-user directories and
// environment variables: the executable's base name without extension or
// leading dots. Debugger builds ("__debug_bin123") map to [Name].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	return prefixOf(executable())
})

func executable() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}

	return os.Args[0]
}

//nolint:gochecknoglobals
var debugBin = regexp.MustCompile(`^__debug_bin\d*$`)

func prefixOf(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimLeft(base, ".")

	if base == "" || debugBin.MatchString(base) {
		return Name
	}

	return base
}

// ConfigDir returns the per-user configuration directory of the command.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the per-user cache directory of the command.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// ConfigPath returns the path of the default configuration file.
func ConfigPath() string { return filepath.Join(ConfigDir(), ConfigFile) }

// userDir resolves base with fallbacks to $HOME/fallback and then the
// working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if wd, werr := os.Getwd(); werr == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
