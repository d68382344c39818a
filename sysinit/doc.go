// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sysinit provides the bring-up sequence of a minimal init program
// for lightweight virtual machine guests.
//
// It mounts the essential pseudo file systems, sets the hostname, attaches a
// console, configures the network and then replaces itself with the
// configured successor program, usually a shell. Configuration is read once
// from the environment (see [LoadConfig]) and removed from it before the
// handoff.
//
// Any failure of a mandatory step is fatal. There is no retry and no rollback
// of steps that already succeeded.
package sysinit
