// Package pathscan implements the PATH binary scan from spec.md §4.12:
// at startup, split $PATH on ':', walk each directory, and record a
// filename -> absolute path mapping for every regular, user-executable
// file, skipping directories that fail to open.
package pathscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPath is used when $PATH is unset.
const DefaultPath = "/usr/local/sbin:/usr/local/bin:/usr/bin"

// Map is a read-only filename -> absolute path lookup, built once at
// startup and passed as an explicit parameter into the validator (Design
// Notes §9: "initialise once at startup and pass as an explicit
// parameter", replacing a global PATH map).
type Map struct {
	byName map[string]string
}

// Scan builds a Map from the PATH environment variable (or DefaultPath
// if unset).
func Scan(pathEnv string, log logrus.FieldLogger) *Map {
	if pathEnv == "" {
		pathEnv = DefaultPath
	}
	m := &Map{byName: make(map[string]string)}
	for _, dir := range strings.Split(pathEnv, ":") {
		if dir == "" {
			continue
		}
		m.scanDir(dir, log)
	}
	return m
}

func (m *Map) scanDir(dir string, log logrus.FieldLogger) {
	walkErr := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if log != nil {
				log.WithError(err).WithField("dir", path).Debug("pathscan: skipping unreadable directory")
			}
			if path == dir {
				return nil
			}
			return filepath.SkipDir
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		if !isUserExecutableRegularFile(info) {
			return nil
		}
		m.byName[entry.Name()] = path
		return nil
	})
	if walkErr != nil && log != nil {
		log.WithError(walkErr).WithField("dir", dir).Debug("pathscan: walk aborted")
	}
}

func isUserExecutableRegularFile(info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o100 != 0
}

// Lookup returns the absolute path for name, if found on PATH.
func (m *Map) Lookup(name string) (string, bool) {
	path, ok := m.byName[name]
	return path, ok
}

// Names returns every known binary name, for Levenshtein "did you mean"
// suggestions (spec.md §4.8).
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	return names
}

// Len reports how many binaries were discovered.
func (m *Map) Len() int {
	return len(m.byName)
}
