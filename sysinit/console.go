// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// WelcomeMessage is printed in plain console mode.
const WelcomeMessage = "Welcome to MicroVM!"

// VirtConsolePath is the first virtio console, used in virtual machine console
// mode.
var VirtConsolePath = consolePath("hvc", 0)

var stdFDs = []int{
	int(os.Stdin.Fd()),
	int(os.Stdout.Fd()),
	int(os.Stderr.Fd()),
}

func consolePath(typ string, id int) string {
	return "/dev/" + typ + strconv.Itoa(id)
}

// AttachConsole makes the terminal device at the given path the controlling
// terminal of a new session and connects stdin, stdout and stderr to it.
//
// The new session is created only after the device is opened and known to be
// a terminal, so a failing attach leaves the session of the caller unchanged.
// The device is opened before the session exists and thus does not become
// the controlling terminal implicitly. This is done explicitly with
// TIOCSCTTY once it is connected to stdin.
func AttachConsole(path string) error {
	fd, err := openConsole(path)
	if err != nil {
		return err
	}

	if !isTerminal(fd) {
		_ = closeFD(fd)
		return fmt.Errorf("console %s: %w", path, ErrNotTerminal)
	}

	// Fails if the process is a process group leader already. In that case
	// it just stays in its current session.
	if err := setsid(); err != nil {
		slog.Debug("Keeping session", slog.Any("reason", err))
	}

	for _, stdFD := range stdFDs {
		if err := dupTo(fd, stdFD); err != nil {
			return fmt.Errorf("console %s: %w", path, err)
		}
	}

	if fd > stdFDs[len(stdFDs)-1] {
		if err := closeFD(fd); err != nil {
			return fmt.Errorf("console %s: %w", path, err)
		}
	}

	if err := setControllingTerminal(stdFDs[0]); err != nil {
		return fmt.Errorf("console %s: %w", path, err)
	}

	return nil
}

func isTerminal(fd int) bool {
	_, err := getTermios(fd)
	return err == nil
}

// DisableEcho clears the local echo flag of the terminal at the given file
// descriptor.
func DisableEcho(fd int) error {
	termios, err := getTermios(fd)
	if err != nil {
		return err
	}

	termios.Lflag &^= unix.ECHO

	return setTermios(fd, termios)
}

// plainConsole disables echo on the given file descriptor and prints the
// welcome message. It does not fail, as there might be no terminal at all.
func plainConsole(out io.Writer, fd int) {
	if err := DisableEcho(fd); err != nil {
		slog.Debug("Terminal attributes not changed", slog.Any("reason", err))
	}

	_, _ = fmt.Fprintln(out, WelcomeMessage)
}

// WithConsole returns a setup [Func] that sets up the console and can be used
// with [Run].
//
// If tty is true, [VirtConsolePath] is attached with [AttachConsole]. Any error
// is fatal in this case. Otherwise echo is disabled on stdin, if possible, and
// the [WelcomeMessage] is printed to stdout.
func WithConsole(tty bool) Func {
	return func(_ *State) error {
		if tty {
			slog.Debug("Attaching console", slog.String("path", VirtConsolePath))
			return AttachConsole(VirtConsolePath)
		}

		plainConsole(os.Stdout, stdFDs[0])

		return nil
	}
}
