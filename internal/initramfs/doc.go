// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package initramfs builds the CPIO (newc) archive a guest kernel unpacks as
// its root file system before running mcinit as "/init".
package initramfs
