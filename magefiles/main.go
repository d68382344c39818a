// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const (
	buildDir          = "build"
	integrationTag    = "integration_sysinit"
	mcinitPackage     = "./cmd/mcinit"
	mkinitramfsPkg    = "./cmd/mkinitramfs"
	defaultShell      = "/bin/busybox"
	shellEnvVar       = "MCINIT_SHELL"
	initramfsFileName = "initramfs.cpio"
)

var testPackages = []string{"./netconf", "./sysinit"}

// mcinit runs as PID 1 without any libraries present, so it must be static.
var staticEnv = map[string]string{"CGO_ENABLED": "0"}

func buildPath(name string) string {
	return filepath.Join(buildDir, name)
}

// Build builds the static mcinit binary.
func Build() error {
	path := buildPath("mcinit")

	rebuild, err := target.Dir(path, "go.mod", "cmd/mcinit", "netconf", "sysinit")
	if err != nil || !rebuild {
		return err
	}

	return sh.RunWithV(staticEnv, "go", "build", "-o", path, mcinitPackage)
}

func shell() string {
	if path, exists := os.LookupEnv(shellEnvVar); exists {
		return path
	}

	return defaultShell
}

// Initramfs builds an initramfs with mcinit and the shell given by
// MCINIT_SHELL (default /bin/busybox).
func Initramfs() error {
	mg.Deps(Build)

	return sh.RunV("go", "run", mkinitramfsPkg,
		"-o", buildPath(initramfsFileName),
		"-shell", shell(),
		buildPath("mcinit"),
	)
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// GuestTests builds an initramfs per test package that runs the privileged
// integration tests. Boot it with MC_INIT=/bin/<pkg>.test set in the kernel
// command line and the network configuration the tests expect.
func GuestTests() error {
	mg.Deps(Build)

	for _, pkg := range testPackages {
		name := filepath.Base(pkg)
		testBinary := buildPath(name + ".test")

		err := sh.RunWithV(staticEnv, "go", "test", "-c",
			"-tags", integrationTag,
			"-o", testBinary,
			pkg,
		)
		if err != nil {
			return fmt.Errorf("compile %s: %w", pkg, err)
		}

		err = sh.RunV("go", "run", mkinitramfsPkg,
			"-o", buildPath(name+"-"+initramfsFileName),
			buildPath("mcinit"),
			testBinary,
		)
		if err != nil {
			return fmt.Errorf("initramfs for %s: %w", pkg, err)
		}
	}

	return nil
}

// Clean removes the build directory.
func Clean() error {
	return sh.Rm(buildDir)
}
