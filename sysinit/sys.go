// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func mount(path, source, fsType string, flags MountFlags, data string) error {
	if source == "" {
		source = fsType
	}

	if err := unix.Mount(source, path, fsType, uintptr(flags), data); err != nil {
		return fmt.Errorf("mount %s: %w", path, err)
	}

	return nil
}

func sethostname(name string) error {
	if err := unix.Sethostname([]byte(name)); err != nil {
		return fmt.Errorf("sethostname: %w", err)
	}

	return nil
}

func setsid() error {
	if _, err := unix.Setsid(); err != nil {
		return fmt.Errorf("setsid: %w", err)
	}

	return nil
}

func openConsole(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return -1, fmt.Errorf("open %s: %w", path, err)
	}

	return fd, nil
}

func closeFD(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close fd %d: %w", fd, err)
	}

	return nil
}

// dupTo duplicates oldFD onto newFD. It is a no-op if both are the same, like
// dup2(2). dup2 itself is not available on all architectures.
func dupTo(oldFD, newFD int) error {
	if oldFD == newFD {
		return nil
	}

	if err := unix.Dup3(oldFD, newFD, 0); err != nil {
		return fmt.Errorf("dup %d to %d: %w", oldFD, newFD, err)
	}

	return nil
}

func getTermios(fd int) (*unix.Termios, error) {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	return termios, nil
}

func setTermios(fd int, termios *unix.Termios) error {
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}

	return nil
}

func setControllingTerminal(fd int) error {
	if err := unix.IoctlSetInt(fd, unix.TIOCSCTTY, 1); err != nil {
		return fmt.Errorf("set controlling terminal: %w", err)
	}

	return nil
}

func execve(path string, argv, env []string) error {
	// Only returns in case of error.
	err := unix.Exec(path, argv, env)
	if err == nil {
		err = ErrHandoffReturned
	}

	return fmt.Errorf("exec %s: %w", path, err)
}

func setenv(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("setenv %s: %w", key, err)
	}

	return nil
}

func unsetenv(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return fmt.Errorf("unsetenv %s: %w", key, err)
	}

	return nil
}

func getpid() int {
	return unix.Getpid()
}
