// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import "log/slog"

// SetHostname sets the system's hostname.
func SetHostname(name string) error {
	slog.Debug("Setting hostname", slog.String("hostname", name))

	return sethostname(name)
}

// WithHostname returns a setup [Func] that wraps [SetHostname] and can be
// used with [Run]. If the name is empty, the hostname is not touched.
func WithHostname(name string) Func {
	return func(_ *State) error {
		if name == "" {
			return nil
		}

		return SetHostname(name)
	}
}
