// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// FSType is a file system type.
type FSType string

// Special file system types.
const (
	FSTypeCgroup FSType = "cgroup"
	FSTypeDevPts FSType = "devpts"
	FSTypeMqueue FSType = "mqueue"
	FSTypeProc   FSType = "proc"
	FSTypeSys    FSType = "sysfs"
	FSTypeTmp    FSType = "tmpfs"

	defaultDirMode = 0o755
)

// MountFlags are flags as defined by mount(2).
type MountFlags uintptr

// MountOptions contains parameters for a mount point.
type MountOptions struct {
	// FSType is the files system type. It must be set to an available [FSType].
	FSType FSType

	// Source is the source device to mount. Can be empty for all the special
	// file system types [FSType]s. If empty it is set to the string of the
	// type.
	Source string

	// Flags are optional mount flags as defined by mount(2).
	Flags MountFlags

	// Data are optional additional parameters that depend of the [FSType] used.
	Data string
}

// MountPoint is a single mount point for a virtual system FS.
type MountPoint struct {
	Path string
	MountOptions
}

// MountPoints is an ordered collection of [MountPoint]s.
type MountPoints []MountPoint

// SystemMountPoints returns the pseudo file systems mounted on every boot in
// the order they must be mounted. /sys must be mounted before
// /sys/fs/cgroup.
func SystemMountPoints() MountPoints {
	return MountPoints{
		{Path: "/proc", MountOptions: MountOptions{FSType: FSTypeProc}},
		{Path: "/dev/pts", MountOptions: MountOptions{FSType: FSTypeDevPts}},
		{Path: "/dev/mqueue", MountOptions: MountOptions{FSType: FSTypeMqueue}},
		{Path: "/dev/shm", MountOptions: MountOptions{FSType: FSTypeTmp}},
		{Path: "/sys", MountOptions: MountOptions{FSType: FSTypeSys}},
		{Path: "/sys/fs/cgroup", MountOptions: MountOptions{FSType: FSTypeCgroup}},
	}
}

// Mount mounts the system file system of [FSType] at the given path.
//
// If path does not exist, it is created. An error is returned if this or the
// mount syscall fails.
func Mount(path string, opts MountOptions) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	slog.Debug("Mounting", slog.String("path", path),
		slog.String("type", string(opts.FSType)))

	return mount(path, opts.Source, string(opts.FSType), opts.Flags, opts.Data)
}

func ensureDir(path string) error {
	_, err := os.Stat(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	slog.Debug("Creating mount point", slog.String("path", path))

	if err := os.MkdirAll(path, defaultDirMode); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}

	return nil
}

// MountAll mounts the given file systems in the given order.
//
// It stops at the first error. File systems mounted before are not unmounted.
func MountAll(mountPoints MountPoints) error {
	for _, mountPoint := range mountPoints {
		if err := Mount(mountPoint.Path, mountPoint.MountOptions); err != nil {
			return err
		}
	}

	return nil
}

// WithMountPoints returns a setup [Func] that wraps [MountAll] and can be used
// with [Run].
func WithMountPoints(mountPoints MountPoints) Func {
	return func(_ *State) error {
		return MountAll(mountPoints)
	}
}
