// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/mcinit/netconf"
)

// Func is a setup step run by [Run].
type Func func(*State) error

// steps are the constructors of the setup [Func]s used by [Sequence].
type steps struct {
	mounts   func(MountPoints) Func
	hostname func(string) Func
	console  func(bool) Func
	network  func(NetworkConfig) Func
}

var systemSteps = steps{
	mounts:   WithMountPoints,
	hostname: WithHostname,
	console:  WithConsole,
	network:  WithNetwork,
}

// Sequence returns the setup steps for the given [Config] in the order they
// must run: mounts, hostname, console and network.
func Sequence(cfg Config) []Func {
	return sequence(cfg, systemSteps)
}

func sequence(cfg Config, steps steps) []Func {
	return []Func{
		steps.mounts(SystemMountPoints()),
		steps.hostname(cfg.Hostname),
		steps.console(cfg.TTY),
		steps.network(cfg.Network(netconf.ResolvConfPath)),
	}
}

// Run runs the [Sequence] for the given [Config] and hands off to the
// successor program with [Handoff].
//
// It returns only in case of failure. Resources registered with
// [State.Cleanup] are released before the handoff and on failure.
func Run(cfg Config, args []string) error {
	if !IsPidOne() {
		slog.Debug("Not running as PID 1")
	}

	if err := run(Sequence(cfg)); err != nil {
		return err
	}

	return Handoff(cfg, args)
}

// Main is the entry point for the init program.
//
// It reads the [Config] from the environment, sets up logging and calls
// [Run] with the given args. It never returns. If [Run] fails, the error is
// printed to stderr and the process exits with a non-zero exit code.
func Main(args []string) {
	cfg := LoadConfig(os.LookupEnv)

	setupLogging(os.Stderr, cfg.Debug)

	err := Run(cfg, args)
	exitFatal(os.Stderr, err)
}

func exitFatal(out io.Writer, err error) {
	printError(out, err)
	os.Exit(1)
}

func printError(out io.Writer, err error) {
	_, _ = fmt.Fprintf(out, "Error: %v\n", err)
}

func run(funcs []Func) error {
	state := new(State)
	defer state.doCleanup()

	return runFuncs(state, funcs)
}

func runFuncs(state *State, funcs []Func) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	for _, fn := range funcs {
		if err = fn(state); err != nil {
			return err
		}
	}

	return nil
}
