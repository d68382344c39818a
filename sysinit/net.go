// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"log/slog"

	"github.com/aibor/mcinit/netconf"
	"github.com/vishvananda/netlink"
)

// NetworkConfig defines how the network is configured by [ConfigureNetwork].
type NetworkConfig struct {
	// Interface is the interface to configure in addition to the loopback
	// interface.
	Interface string

	// Address and Netmask are set on Interface if both are not empty.
	Address string
	Netmask string

	// Gateway is installed as default route if not empty.
	Gateway string

	// DNS is written into ResolvConf as only nameserver if not empty.
	DNS        string
	ResolvConf string
}

// NetConfigurator performs the actual interface configuration.
// [*netconf.Socket] is the implementation used by [WithNetwork].
type NetConfigurator interface {
	Up(name string) error
	Configure(name, addr, netmask string) error
	AddDefaultRoute(gateway string) error
}

var _ NetConfigurator = (*netconf.Socket)(nil)

// ConfigureNetwork brings the loopback interface and the configured interface
// up and applies the static configuration.
//
// A failure to bring the loopback interface up is an error. If the configured
// interface can not be brought up, it is assumed there is no network and the
// remaining configuration is skipped without error. Address, gateway and DNS
// are applied independent of each other, if present. Each of them failing is
// an error.
func ConfigureNetwork(conf NetConfigurator, cfg NetworkConfig) error {
	slog.Debug("Bringing interface up", slog.String("interface", LoopbackInterface))

	if err := conf.Up(LoopbackInterface); err != nil {
		return fmt.Errorf("loopback: %w", err)
	}

	slog.Debug("Checking network interface", slog.String("interface", cfg.Interface))

	if err := conf.Up(cfg.Interface); err != nil {
		slog.Debug("No network interface found",
			slog.String("interface", cfg.Interface),
			slog.Any("reason", err))

		return nil
	}

	if cfg.Address != "" && cfg.Netmask != "" {
		slog.Debug("Configuring interface",
			slog.String("interface", cfg.Interface),
			slog.String("address", cfg.Address),
			slog.String("netmask", cfg.Netmask))

		err := conf.Configure(cfg.Interface, cfg.Address, cfg.Netmask)
		if err != nil {
			return fmt.Errorf("interface configuration: %w", err)
		}
	}

	if cfg.Gateway != "" {
		slog.Debug("Configuring gateway", slog.String("gateway", cfg.Gateway))

		if err := conf.AddDefaultRoute(cfg.Gateway); err != nil {
			return fmt.Errorf("gateway configuration: %w", err)
		}
	}

	if cfg.DNS != "" {
		slog.Debug("Configuring DNS", slog.String("nameserver", cfg.DNS))

		if err := netconf.WriteResolvConf(cfg.ResolvConf, cfg.DNS); err != nil {
			return fmt.Errorf("DNS configuration: %w", err)
		}
	}

	return nil
}

// WithNetwork returns a setup [Func] that wraps [ConfigureNetwork] and can be
// used with [Run].
//
// The control socket is closed by the [State] cleanup, so it is released on
// every path, including errors.
func WithNetwork(cfg NetworkConfig) Func {
	return func(state *State) error {
		sock, err := netconf.Open()
		if err != nil {
			return err
		}

		state.Cleanup(sock.Close)

		if err := ConfigureNetwork(sock, cfg); err != nil {
			return err
		}

		if debugEnabled() {
			logNetworkState()
		}

		return nil
	}
}

// logNetworkState logs all links with their IPv4 addresses.
func logNetworkState() {
	links, err := netlink.LinkList()
	if err != nil {
		slog.Debug("Listing links failed", slog.Any("error", err))
		return
	}

	for _, link := range links {
		attrs := link.Attrs()

		addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
		if err != nil {
			slog.Debug("Listing addresses failed",
				slog.String("interface", attrs.Name),
				slog.Any("error", err))

			continue
		}

		addrStrings := make([]string, 0, len(addrs))
		for _, addr := range addrs {
			addrStrings = append(addrStrings, addr.IPNet.String())
		}

		slog.Debug("Network interface",
			slog.String("interface", attrs.Name),
			slog.String("flags", attrs.Flags.String()),
			slog.Int("mtu", attrs.MTU),
			slog.Any("addresses", addrStrings))
	}
}
