// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import "errors"

var (
	// ErrPanic is returned if a [Func] panicked.
	ErrPanic = errors.New("function panicked")

	// ErrHandoffReturned is returned if replacing the process image returned
	// without reporting an error.
	ErrHandoffReturned = errors.New("process image replacement returned")

	// ErrNotTerminal is returned if the console device is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)
