// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"log/slog"
	"slices"
)

// CleanupFunc releases a resource acquired by a [Func].
type CleanupFunc func() error

// State is passed to each [Func] run by [Run].
type State struct {
	cleanupFns []CleanupFunc
}

// Cleanup registers a function that is run once all [Func]s are done, no
// matter if they succeeded. Cleanup functions run in reverse order of
// registration.
func (s *State) Cleanup(fn CleanupFunc) {
	s.cleanupFns = append(s.cleanupFns, fn)
}

func (s *State) doCleanup() {
	slices.Reverse(s.cleanupFns)

	for _, fn := range s.cleanupFns {
		if err := fn(); err != nil {
			slog.Warn("Cleanup failed", slog.Any("error", err))
		}
	}

	s.cleanupFns = nil
}
