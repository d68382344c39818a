// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/aibor/mcinit/internal/initramfs"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name   string
	mode   cpio.FileMode
	target string
	body   string
}

func readArchive(t *testing.T, r io.Reader) []entry {
	t.Helper()

	var entries []entry

	reader := cpio.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		body, err := io.ReadAll(reader)
		require.NoError(t, err)

		entries = append(entries, entry{
			name:   hdr.Name,
			mode:   hdr.Mode,
			target: hdr.Linkname,
			body:   string(body),
		})
	}

	return entries
}

func TestArchive_Write(t *testing.T) {
	testFS := fstest.MapFS{
		"build/mcinit":    &fstest.MapFile{Data: []byte("init"), Mode: 0o644},
		"usr/bin/busybox": &fstest.MapFile{Data: []byte("busybox"), Mode: 0o755},
		"usr/bin/tool":    &fstest.MapFile{Data: []byte("tool"), Mode: 0o700},
		"usr/bin":         &fstest.MapFile{Mode: fs.ModeDir | 0o755},
	}

	skeleton := []entry{
		{name: "bin", mode: cpio.TypeDir | 0o755},
		{name: "dev", mode: cpio.TypeDir | 0o755},
		{name: "etc", mode: cpio.TypeDir | 0o755},
		{name: "proc", mode: cpio.TypeDir | 0o755},
		{name: "sys", mode: cpio.TypeDir | 0o755},
		{name: "tmp", mode: cpio.TypeDir | 0o755},
	}

	tests := []struct {
		name        string
		archive     initramfs.Archive
		expected    []entry
		expectedErr error
	}{
		{
			name:    "init only",
			archive: initramfs.Archive{Init: "build/mcinit"},
			expected: append(skeleton,
				entry{name: "init", mode: cpio.TypeReg | 0o755, body: "init"},
			),
		},
		{
			name: "with shell",
			archive: initramfs.Archive{
				Init:  "build/mcinit",
				Files: []string{"usr/bin/busybox", "usr/bin/tool"},
				Links: map[string]string{
					"bin/sh":       "busybox",
					"bin/ls":       "busybox",
					"bin/sbin/ash": "../busybox",
				},
			},
			expected: append(skeleton,
				entry{name: "init", mode: cpio.TypeReg | 0o755, body: "init"},
				entry{name: "bin/busybox", mode: cpio.TypeReg | 0o755, body: "busybox"},
				entry{name: "bin/tool", mode: cpio.TypeReg | 0o755, body: "tool"},
				entry{name: "bin/ls", mode: cpio.TypeSymlink | 0o777, target: "busybox"},
				entry{name: "bin/sbin/ash", mode: cpio.TypeSymlink | 0o777, target: "../busybox"},
				entry{name: "bin/sh", mode: cpio.TypeSymlink | 0o777, target: "busybox"},
			),
		},
		{
			name:        "no init",
			archive:     initramfs.Archive{},
			expectedErr: initramfs.ErrNoInit,
		},
		{
			name:        "missing init",
			archive:     initramfs.Archive{Init: "build/missing"},
			expectedErr: fs.ErrNotExist,
		},
		{
			name: "directory as file",
			archive: initramfs.Archive{
				Init:  "build/mcinit",
				Files: []string{"usr/bin"},
			},
			expectedErr: initramfs.ErrNotRegularFile,
		},
		{
			name: "absolute link",
			archive: initramfs.Archive{
				Init:  "build/mcinit",
				Links: map[string]string{"/bin/sh": "busybox"},
			},
			expectedErr: initramfs.ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var archive bytes.Buffer

			err := tt.archive.Write(testFS, &archive)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expected, readArchive(t, &archive))
		})
	}
}
