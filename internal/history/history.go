// Package history implements the append-only, file-backed command history
// described in spec.md §4.4. It generalizes the single-line "prevline"
// kylelemons-goat/term/term_line.go keeps in TTY.last into a full,
// persisted, reset-aware history with a movable read cursor, and uses
// logrus (the way vippsas-sqlcode's cli/cmd package threads a
// logrus.FieldLogger into its collaborators) to report file errors that
// the spec says are otherwise silent.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/better-ecosystem/better-shell/internal/shlog"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// ErrConfigError is returned by DefaultPath when neither $XDG_HOME_CACHE
// nor $HOME is set.
var ErrConfigError = fmt.Errorf("history: neither XDG_HOME_CACHE nor HOME is set")

const historyRelPath = "better/better-shell/history"

// DefaultPath resolves the default history file location:
// $XDG_HOME_CACHE/better/better-shell/history, falling back to
// $HOME/.cache/better/better-shell/history.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_HOME_CACHE"); xdg != "" {
		return filepath.Join(xdg, historyRelPath), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache", historyRelPath), nil
	}
	return "", ErrConfigError
}

// Store is an ordered, file-backed list of previously submitted lines with
// a movable read index (spec.md §3, HistoryStore).
type Store struct {
	path  string
	log   logrus.FieldLogger
	lines []string
	index int
	// firstRun marks that GetPrev has not decremented since the last
	// Reset — the "first Up yields the most recent line" asymmetry
	// spec.md §4.4/§9 calls out explicitly.
	firstRun bool
}

// Open opens (creating parent directories and the file as needed) the
// history store at path, reading its current contents into memory. If log
// is nil, a discarding logger is used.
func Open(path string, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		log = shlog.Discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create parent directories: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := textutil.Trim(scanner.Text())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("history: error reading existing file")
	}

	s := &Store{path: path, log: log, lines: lines}
	s.Reset()
	return s, nil
}

// Len returns the number of entries currently in memory.
func (s *Store) Len() int { return len(s.lines) }

// Entries returns a copy of the in-memory history list.
func (s *Store) Entries() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// PushBack appends text to the history, ignoring empty/whitespace-only
// text and suppressing consecutive duplicates, per spec.md §4.4.
func (s *Store) PushBack(text string) {
	trimmed := textutil.Trim(text)
	if trimmed == "" {
		return
	}
	if len(s.lines) > 0 && s.lines[len(s.lines)-1] == trimmed {
		return
	}

	s.lines = append(s.lines, trimmed)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		s.log.WithError(err).Warn("history: failed to open for append")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(trimmed + "\n"); err != nil {
		s.log.WithError(err).Warn("history: failed to append entry")
		return
	}
	if err := f.Sync(); err != nil {
		s.log.WithError(err).Warn("history: failed to flush entry")
	}
}

// GetNext moves the read index forward one entry and returns it, or
// ("", false) if the index already points at the last entry.
func (s *Store) GetNext() (string, bool) {
	if len(s.lines) == 0 || s.index >= len(s.lines)-1 {
		return "", false
	}
	s.index++
	s.firstRun = false
	return s.lines[s.index], true
}

// GetPrev moves the read index backward one entry and returns it. The
// first call after Reset returns the current (most recent) entry without
// decrementing; subsequent calls decrement first. At index 0 it keeps
// returning the oldest entry.
func (s *Store) GetPrev() (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	if s.index == 0 {
		s.firstRun = false
		return s.lines[0], true
	}
	if s.firstRun {
		s.firstRun = false
		return s.lines[s.index], true
	}
	s.index--
	return s.lines[s.index], true
}

// Reset moves the read index to the most recent entry and arms the
// first-call-after-reset rule for GetPrev.
func (s *Store) Reset() {
	if len(s.lines) == 0 {
		s.index = 0
	} else {
		s.index = len(s.lines) - 1
	}
	s.firstRun = true
}
