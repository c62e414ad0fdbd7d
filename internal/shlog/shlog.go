// Package shlog wires logrus.FieldLogger into the shell front-end the way
// vippsas/sqlcode's cli/cmd package does: a standard logger is created once
// and threaded explicitly into collaborators, never reached for as a
// package-level global.
package shlog

import "github.com/sirupsen/logrus"

// New returns the process-wide logger. Kept as a thin constructor (rather
// than a bare logrus.StandardLogger() call scattered at call sites) so the
// formatter/level can be tuned in one place.
func New() logrus.FieldLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// Discard returns a logger that drops everything, for tests and for
// -c/--command one-shot invocations that must not pollute stdout/stderr
// with anything other than the command's own output.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
