package test

import (
	"testing"
)

// Logger matches the subset of log.Logger the daemon writes through,
// so tests can route log output into testing.T.
type Logger interface {
	Output(maxdepth int, s string) error
}

type testLogger struct {
	tb testing.TB
}

func (tl *testLogger) Output(maxdepth int, s string) error {
	tl.tb.Log(s)
	return nil
}

func NewTestLogger(tb testing.TB) Logger {
	return &testLogger{tb}
}
