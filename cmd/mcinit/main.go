// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Init program for lightweight virtual machine guests. It prepares the guest
// system and replaces itself with the program given by MC_INIT, /bin/sh by
// default.
package main

import (
	"os"

	"github.com/aibor/mcinit/sysinit"
)

func main() {
	sysinit.Main(os.Args)
}
