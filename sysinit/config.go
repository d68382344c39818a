// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

// Environment variables the configuration is read from.
const (
	EnvInit      = "MC_INIT"
	EnvHostname  = "MC_HOSTNAME"
	EnvTTY       = "MC_TTY"
	EnvDebug     = "MC_DEBUG"
	EnvInterface = "MC_INTERFACE"
	EnvIPAddr    = "MC_IPADDR"
	EnvNetmask   = "MC_NETMASK"
	EnvBroadcast = "MC_BROADCAST"
	EnvGateway   = "MC_GATEWAY"
	EnvDNS       = "MC_DNS"
)

// Defaults for optional configuration values.
const (
	DefaultInit      = "/bin/sh"
	DefaultInterface = "eth0"
	DefaultPath      = "/usr/local/bin:/usr/local/sbin:/usr/bin:/usr/sbin:/bin:/sbin"

	// LoopbackInterface is always brought up, regardless of configuration.
	LoopbackInterface = "lo"

	enabledValue = "1"
)

// ConfigEnvVars lists all environment variables [LoadConfig] reads. They are
// removed from the environment before the handoff.
var ConfigEnvVars = []string{
	EnvInit,
	EnvHostname,
	EnvTTY,
	EnvDebug,
	EnvInterface,
	EnvIPAddr,
	EnvNetmask,
	EnvBroadcast,
	EnvGateway,
	EnvDNS,
}

// LookupFunc looks up a variable by name. It reports whether the variable is
// present. [os.LookupEnv] is the usual implementation.
type LookupFunc func(key string) (string, bool)

// Config is the snapshot of the init configuration. It is read once and never
// changed afterwards.
type Config struct {
	// Init is the program the process is replaced with at the end.
	Init string

	// Hostname is set if not empty.
	Hostname string

	// TTY enables the virtual machine console mode. Otherwise the plain
	// console mode is used.
	TTY bool

	// Debug enables trace output of the single steps.
	Debug bool

	// Interface is the network interface to configure.
	Interface string

	// Address and Netmask are applied only if both are set.
	Address string
	Netmask string

	// Broadcast is read but not applied by the bring-up sequence.
	Broadcast string

	// Gateway is installed as default route if set.
	Gateway string

	// DNS is written as the only nameserver if set.
	DNS string
}

// LoadConfig reads the configuration using the given lookup function.
//
// Absent variables and variables with empty values are treated the same.
// Boolean flags are only enabled by the exact value "1".
func LoadConfig(lookup LookupFunc) Config {
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	cfg := Config{
		Init:      get(EnvInit),
		Hostname:  get(EnvHostname),
		TTY:       get(EnvTTY) == enabledValue,
		Debug:     get(EnvDebug) == enabledValue,
		Interface: get(EnvInterface),
		Address:   get(EnvIPAddr),
		Netmask:   get(EnvNetmask),
		Broadcast: get(EnvBroadcast),
		Gateway:   get(EnvGateway),
		DNS:       get(EnvDNS),
	}

	if cfg.Init == "" {
		cfg.Init = DefaultInit
	}

	if cfg.Interface == "" {
		cfg.Interface = DefaultInterface
	}

	return cfg
}

// Network returns the network part of the configuration. The DNS server is
// written into the given resolver configuration file.
func (c Config) Network(resolvConf string) NetworkConfig {
	return NetworkConfig{
		Interface:  c.Interface,
		Address:    c.Address,
		Netmask:    c.Netmask,
		Gateway:    c.Gateway,
		DNS:        c.DNS,
		ResolvConf: resolvConf,
	}
}
