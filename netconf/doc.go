// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package netconf configures IPv4 network interfaces using the classic
// socket ioctl interface of the Linux kernel.
//
// All operations work on a caller owned [Socket]. Each call builds its
// request structure from scratch, so no interface state is cached between
// calls. Errors are returned to the caller, who decides if they are fatal.
package netconf
