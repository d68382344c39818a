// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"log/slog"
	"os"
)

// Exec replaces the current process image with the program at path.
//
// It does not return on success. If it returns, the returned error is never
// nil, so any code running after it deals with a failed handoff.
func Exec(path string, argv, env []string) error {
	return execve(path, argv, env)
}

// successorArgs returns the argument vector for the successor program: the
// given one with only the first element replaced by path.
func successorArgs(path string, args []string) []string {
	argv := make([]string, max(len(args), 1))
	copy(argv, args)
	argv[0] = path

	return argv
}

// Handoff removes the configuration from the environment and replaces the
// process with the configured successor program.
//
// The given args are passed through with the first argument rewritten to
// the successor's path. Like [Exec], it only returns in case of failure.
func Handoff(cfg Config, args []string) error {
	if err := UnsetEnv(ConfigEnvVars...); err != nil {
		return err
	}

	if err := SetDefaultEnv(EnvVars{"PATH": DefaultPath}); err != nil {
		return err
	}

	argv := successorArgs(cfg.Init, args)

	slog.Debug("Handing off",
		slog.Int("argc", len(argv)),
		slog.String("argv0", argv[0]))

	return Exec(cfg.Init, argv, os.Environ())
}
