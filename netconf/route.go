// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package netconf

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rtentry mirrors struct rtentry of <linux/route.h>. Fields of type unsigned
// long and pointers are represented by uintptr, so the layout matches on 32
// and 64 bit architectures.
type rtentry struct {
	pad1    uintptr
	dst     unix.RawSockaddrInet4
	gateway unix.RawSockaddrInet4
	genmask unix.RawSockaddrInet4
	flags   uint16
	pad2    int16
	pad3    uintptr
	pad4    uintptr
	metric  int16
	dev     uintptr
	mtu     uintptr
	window  uintptr
	irtt    uint16
}

func inet4Sockaddr(addr [4]byte) unix.RawSockaddrInet4 {
	return unix.RawSockaddrInet4{
		Family: unix.AF_INET,
		Addr:   addr,
	}
}

// newDefaultRoute creates a route entry for 0.0.0.0/0 via the given gateway.
func newDefaultRoute(gateway [4]byte) *rtentry {
	return &rtentry{
		dst:     inet4Sockaddr([4]byte{}),
		gateway: inet4Sockaddr(gateway),
		genmask: inet4Sockaddr([4]byte{}),
		flags:   unix.RTF_UP | unix.RTF_GATEWAY,
	}
}

// AddDefaultRoute installs a default route via the given gateway.
//
// Existing default routes are neither replaced nor removed. Adding a second
// one is up to the kernel, which usually rejects it with EEXIST.
func (s *Socket) AddDefaultRoute(gateway string) error {
	fd, err := s.rawFD()
	if err != nil {
		return fmt.Errorf("add default route: %w", err)
	}

	route := newDefaultRoute(ParseInet4(gateway))

	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(fd),
		uintptr(unix.SIOCADDRT),
		uintptr(unsafe.Pointer(route)),
	)
	if errno != 0 {
		return fmt.Errorf("add default route via %s: %w", gateway, errno)
	}

	return nil
}
