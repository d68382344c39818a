// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package netconf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const closedFD = -1

// Socket is the control socket all interface and route ioctls are sent on.
//
// It is not safe for concurrent use.
type Socket struct {
	fd int
}

// Open creates a new control socket.
//
// Any socket can be used for sending ioctls. A datagram socket is the
// cheapest one to get.
func Open() (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("create control socket: %w", err)
	}

	return &Socket{fd: fd}, nil
}

// Close closes the socket. Closing an already closed socket is a no-op.
func (s *Socket) Close() error {
	if s == nil || s.fd < 0 {
		return nil
	}

	fd := s.fd
	s.fd = closedFD

	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close control socket: %w", err)
	}

	return nil
}

func (s *Socket) rawFD() (int, error) {
	if s == nil || s.fd < 0 {
		return closedFD, ErrClosed
	}

	return s.fd, nil
}

func (s *Socket) ioctlIfreq(name string, req uint, op string, prepare func(*unix.Ifreq) error) (*unix.Ifreq, error) {
	fd, err := s.rawFD()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, name, err)
	}

	ifReq, err := newIfreq(name)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, name, err)
	}

	if prepare != nil {
		if err := prepare(ifReq); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, name, err)
		}
	}

	if err := unix.IoctlIfreq(fd, req, ifReq); err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, name, err)
	}

	return ifReq, nil
}
