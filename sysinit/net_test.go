// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/mcinit/sysinit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingConfigurator records all calls. Calls listed in errs fail with the
// given error.
type recordingConfigurator struct {
	calls []string
	errs  map[string]error
}

func (r *recordingConfigurator) record(call string) error {
	r.calls = append(r.calls, call)
	return r.errs[call]
}

func (r *recordingConfigurator) Up(name string) error {
	return r.record("up " + name)
}

func (r *recordingConfigurator) Configure(name, addr, netmask string) error {
	return r.record("configure " + name + " " + addr + " " + netmask)
}

func (r *recordingConfigurator) AddDefaultRoute(gateway string) error {
	return r.record("route " + gateway)
}

func TestConfigureNetwork(t *testing.T) {
	tests := []struct {
		name          string
		cfg           sysinit.NetworkConfig
		errs          map[string]error
		expectedCalls []string
		expectedDNS   string
		expectedErr   error
	}{
		{
			name: "interface only",
			cfg:  sysinit.NetworkConfig{Interface: "eth0"},
			expectedCalls: []string{
				"up lo",
				"up eth0",
			},
		},
		{
			name: "full static configuration",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Address:   "10.0.2.15",
				Netmask:   "255.255.255.0",
				Gateway:   "10.0.2.2",
				DNS:       "8.8.8.8",
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
				"configure eth0 10.0.2.15 255.255.255.0",
				"route 10.0.2.2",
			},
			expectedDNS: "nameserver 8.8.8.8",
		},
		{
			name: "address without netmask",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Address:   "10.0.2.15",
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
			},
		},
		{
			name: "netmask without address",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Netmask:   "255.255.255.0",
				Gateway:   "10.0.2.2",
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
				"route 10.0.2.2",
			},
		},
		{
			name: "loopback fails",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Address:   "10.0.2.15",
				Netmask:   "255.255.255.0",
			},
			errs: map[string]error{
				"up lo": assert.AnError,
			},
			expectedCalls: []string{
				"up lo",
			},
			expectedErr: assert.AnError,
		},
		{
			name: "interface missing",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Address:   "10.0.2.15",
				Netmask:   "255.255.255.0",
				Gateway:   "10.0.2.2",
				DNS:       "8.8.8.8",
			},
			errs: map[string]error{
				"up eth0": assert.AnError,
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
			},
		},
		{
			name: "configure fails",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Address:   "10.0.2.15",
				Netmask:   "255.255.255.0",
				Gateway:   "10.0.2.2",
			},
			errs: map[string]error{
				"configure eth0 10.0.2.15 255.255.255.0": assert.AnError,
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
				"configure eth0 10.0.2.15 255.255.255.0",
			},
			expectedErr: assert.AnError,
		},
		{
			name: "gateway fails",
			cfg: sysinit.NetworkConfig{
				Interface: "eth0",
				Gateway:   "10.0.2.2",
				DNS:       "8.8.8.8",
			},
			errs: map[string]error{
				"route 10.0.2.2": assert.AnError,
			},
			expectedCalls: []string{
				"up lo",
				"up eth0",
				"route 10.0.2.2",
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolvConf := filepath.Join(t.TempDir(), "resolv.conf")
			tt.cfg.ResolvConf = resolvConf

			conf := &recordingConfigurator{errs: tt.errs}

			err := sysinit.ConfigureNetwork(conf, tt.cfg)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expectedCalls, conf.calls, "calls")

			content, err := os.ReadFile(resolvConf)
			if tt.expectedDNS == "" {
				assert.ErrorIs(t, err, os.ErrNotExist, "resolver config")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDNS, string(content), "resolver config")
		})
	}
}

func TestConfigureNetworkDNSFails(t *testing.T) {
	cfg := sysinit.NetworkConfig{
		Interface:  "eth0",
		DNS:        "8.8.8.8",
		ResolvConf: filepath.Join(t.TempDir(), "missing", "resolv.conf"),
	}

	err := sysinit.ConfigureNetwork(&recordingConfigurator{}, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
