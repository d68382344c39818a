// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package netconf

import (
	"errors"
	"fmt"
	"math"
	"net/netip"

	"golang.org/x/sys/unix"
)

// ErrInvalidMTU is returned if an MTU does not fit into the request.
var ErrInvalidMTU = errors.New("invalid mtu")

// newIfreq creates a zeroed request for the given interface name. Names that
// do not fit into IFNAMSIZ-1 bytes are rejected.
func newIfreq(name string) (*unix.Ifreq, error) {
	ifReq, err := unix.NewIfreq(name)
	if err != nil {
		return nil, fmt.Errorf("interface request: %w", err)
	}

	return ifReq, nil
}

// ParseInet4 parses the given dotted-quad IPv4 address.
//
// No validation error is returned. Text that is not a valid IPv4 address
// results in the unspecified address 0.0.0.0. It is up to the kernel to
// reject it.
func ParseInet4(s string) [4]byte {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Unmap().Is4() {
		return [4]byte{}
	}

	return addr.Unmap().As4()
}

// Flags returns the flags of the named interface.
func (s *Socket) Flags(name string) (uint16, error) {
	ifReq, err := s.ioctlIfreq(name, unix.SIOCGIFFLAGS, "get flags", nil)
	if err != nil {
		return 0, err
	}

	return ifReq.Uint16(), nil
}

// SetFlags replaces the flags of the named interface.
func (s *Socket) SetFlags(name string, flags uint16) error {
	_, err := s.ioctlIfreq(name, unix.SIOCSIFFLAGS, "set flags",
		func(ifReq *unix.Ifreq) error {
			ifReq.SetUint16(flags)
			return nil
		},
	)

	return err
}

// Up brings the named interface up.
//
// The current flags are read and written back with IFF_UP added. This is not
// atomic, so concurrent flag changes by someone else may get lost.
func (s *Socket) Up(name string) error {
	flags, err := s.Flags(name)
	if err != nil {
		return err
	}

	return s.SetFlags(name, flags|unix.IFF_UP)
}

// SetAddress sets the IPv4 address of the named interface.
func (s *Socket) SetAddress(name, addr string) error {
	return s.setInet4(name, unix.SIOCSIFADDR, "set address", addr)
}

// SetNetmask sets the IPv4 netmask of the named interface.
func (s *Socket) SetNetmask(name, netmask string) error {
	return s.setInet4(name, unix.SIOCSIFNETMASK, "set netmask", netmask)
}

// SetBroadcast sets the IPv4 broadcast address of the named interface.
func (s *Socket) SetBroadcast(name, broadcast string) error {
	return s.setInet4(name, unix.SIOCSIFBRDADDR, "set broadcast", broadcast)
}

func (s *Socket) setInet4(name string, req uint, op, addr string) error {
	inet4 := ParseInet4(addr)

	_, err := s.ioctlIfreq(name, req, op, func(ifReq *unix.Ifreq) error {
		return ifReq.SetInet4Addr(inet4[:])
	})

	return err
}

// SetMTU sets the MTU of the named interface.
func (s *Socket) SetMTU(name string, mtu int) error {
	if mtu < 0 || mtu > math.MaxInt32 {
		return fmt.Errorf("set mtu %s: %w: %d", name, ErrInvalidMTU, mtu)
	}

	_, err := s.ioctlIfreq(name, unix.SIOCSIFMTU, "set mtu",
		func(ifReq *unix.Ifreq) error {
			ifReq.SetUint32(uint32(mtu))
			return nil
		},
	)

	return err
}

// Configure brings the named interface up and sets its address and netmask,
// in this order.
//
// It stops at the first failing step. Steps that succeeded before are not
// reverted.
func (s *Socket) Configure(name, addr, netmask string) error {
	if err := s.Up(name); err != nil {
		return err
	}

	if err := s.SetAddress(name, addr); err != nil {
		return err
	}

	return s.SetNetmask(name, netmask)
}
