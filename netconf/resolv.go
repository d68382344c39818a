// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package netconf

import (
	"fmt"
	"os"
)

// ResolvConfPath is the resolver configuration file of the system.
const ResolvConfPath = "/etc/resolv.conf"

const resolvConfMode = 0o644

// WriteResolvConf replaces the content of the resolver configuration file at
// path with a single nameserver line for the given server.
//
// The file is created if it does not exist. No trailing newline is written.
func WriteResolvConf(path, server string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, resolvConfMode)
	if err != nil {
		return fmt.Errorf("open resolver config: %w", err)
	}

	if _, err := file.WriteString(nameserverLine(server)); err != nil {
		_ = file.Close()
		return fmt.Errorf("write resolver config: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close resolver config: %w", err)
	}

	return nil
}

func nameserverLine(server string) string {
	return "nameserver " + server
}
