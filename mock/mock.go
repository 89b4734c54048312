// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log/slog"
	"maycharts/chartlog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NewLogger creates a debug level text logger writing into a pipe.
// Log records can be read line by line using the returned scanner.
func NewLogger(t *testing.T) (*slog.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), bufio.NewScanner(r)
}

// UseLogger installs a mock logger as chart logger for the duration of the test.
func UseLogger(t *testing.T) *bufio.Scanner {
	l, s := NewLogger(t)
	chartlog.SetLogger(l)
	t.Cleanup(func() { chartlog.SetLogger(nil) })
	return s
}
