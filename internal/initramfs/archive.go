// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"
)

const (
	// InitPath is where the kernel looks for the first user space program.
	InitPath = "init"

	// BinDir holds all additional files.
	BinDir = "bin"

	execMode = 0o755
)

// SkeletonDirs returns the directories created in every archive, so the
// pseudo file system mount points and a writable /tmp exist.
func SkeletonDirs() []string {
	return []string{BinDir, "dev", "etc", "proc", "sys", "tmp"}
}

// Archive describes the content of an initramfs.
//
// All source paths are relative to the [fs.FS] passed to [Archive.Write].
type Archive struct {
	// Init is the source of the init program, written to [InitPath].
	Init string

	// Files are written into [BinDir] by their base name.
	Files []string

	// Links maps archive paths to symbolic link targets, like "bin/sh" to
	// "busybox".
	Links map[string]string
}

// Write writes the archive as CPIO into w. Entries are written in this order:
// skeleton directories, init, files and links sorted by path.
func (a Archive) Write(fsys fs.FS, w io.Writer) (err error) {
	if a.Init == "" {
		return ErrNoInit
	}

	writer := NewCPIOWriter(w)

	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	for _, dir := range SkeletonDirs() {
		if err := writer.WriteDirectory(dir); err != nil {
			return err
		}
	}

	if err := copyFile(writer, fsys, InitPath, a.Init); err != nil {
		return err
	}

	for _, file := range a.Files {
		name := path.Join(BinDir, path.Base(file))
		if err := copyFile(writer, fsys, name, file); err != nil {
			return err
		}
	}

	for _, name := range slices.Sorted(maps.Keys(a.Links)) {
		if !fs.ValidPath(name) || name == "." {
			return fmt.Errorf("%w: %s", ErrInvalidPath, name)
		}

		if err := writer.WriteLink(name, a.Links[name]); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(writer *CPIOWriter, fsys fs.FS, name, source string) error {
	file, err := fsys.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer file.Close()

	return writer.WriteRegular(name, file, execMode)
}
