// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit_test

import (
	"os"
	"testing"

	"github.com/aibor/mcinit/sysinit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetEnvVars(t *testing.T) {
	t.Setenv("TESTVAR1", "")
	t.Setenv("TESTVAR2", "")

	err := sysinit.SetEnv(sysinit.EnvVars{
		"TESTVAR1": "42",
		"TESTVAR2": "269",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", os.Getenv("TESTVAR1"), "testvar1")
	assert.Equal(t, "269", os.Getenv("TESTVAR2"), "testvar2")
}

func TestSetDefaultEnv(t *testing.T) {
	t.Setenv("TESTVAR1", "present")
	t.Setenv("TESTVAR2", "")
	require.NoError(t, os.Unsetenv("TESTVAR2"))

	err := sysinit.SetDefaultEnv(sysinit.EnvVars{
		"TESTVAR1": "default1",
		"TESTVAR2": "default2",
	})
	require.NoError(t, err)

	assert.Equal(t, "present", os.Getenv("TESTVAR1"), "testvar1")
	assert.Equal(t, "default2", os.Getenv("TESTVAR2"), "testvar2")
}

func TestUnsetEnv(t *testing.T) {
	t.Setenv("TESTVAR1", "42")
	t.Setenv("TESTVAR2", "269")

	err := sysinit.UnsetEnv("TESTVAR1", "TESTVAR2", "TESTVAR_NOT_SET")
	require.NoError(t, err)

	_, exists := os.LookupEnv("TESTVAR1")
	assert.False(t, exists, "testvar1")

	_, exists = os.LookupEnv("TESTVAR2")
	assert.False(t, exists, "testvar2")
}
