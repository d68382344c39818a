// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import "os"

// EnvVars is a map of environment variable values by name.
type EnvVars map[string]string

// SetEnv sets the given [EnvVars] in the environment.
func SetEnv(envVars EnvVars) error {
	for key, value := range sortedMap(envVars) {
		err := setenv(key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// SetDefaultEnv sets those of the given [EnvVars] that are not present in the
// environment yet.
func SetDefaultEnv(envVars EnvVars) error {
	missing := EnvVars{}

	for key, value := range envVars {
		if _, exists := os.LookupEnv(key); !exists {
			missing[key] = value
		}
	}

	return SetEnv(missing)
}

// UnsetEnv removes the given variables from the environment. Variables that
// are not present are ignored.
func UnsetEnv(names ...string) error {
	for _, name := range names {
		err := unsetenv(name)
		if err != nil {
			return err
		}
	}

	return nil
}
