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

func TestWithHostnameEmpty(t *testing.T) {
	before, err := os.Hostname()
	require.NoError(t, err)

	err = sysinit.WithHostname("")(new(sysinit.State))
	require.NoError(t, err)

	after, err := os.Hostname()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
