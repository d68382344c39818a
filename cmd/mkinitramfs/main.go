// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Mkinitramfs writes an initramfs with the given mcinit binary as "/init".
//
//	mkinitramfs -o out.cpio [-shell busybox] path/to/mcinit [files...]
//
// Additional files are put into /bin. If a shell is given, it is added to
// /bin as well and linked as /bin/sh.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aibor/mcinit/internal/initramfs"
)

var errNoInit = errors.New("no init file given")

type config struct {
	output string
	shell  string
	init   string
	files  []string
}

func parseArgs(args []string, output io.Writer) (config, error) {
	var cfg config

	fsName := filepath.Base(args[0])
	flags := flag.NewFlagSet(fsName, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] init [files...]\n", fsName)
		flags.PrintDefaults()
	}

	flags.StringVar(&cfg.output, "o", "", "write archive to `file` instead of stdout")
	flags.StringVar(&cfg.shell, "shell", "", "add shell `binary` linked as /bin/sh")

	if err := flags.Parse(args[1:]); err != nil {
		return cfg, err //nolint:wrapcheck
	}

	if flags.NArg() == 0 {
		return cfg, errNoInit
	}

	cfg.init = flags.Arg(0)
	cfg.files = flags.Args()[1:]

	return cfg, nil
}

// relPath returns the path relative to "/" for use with [os.DirFS].
func relPath(file string) (string, error) {
	path, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("lookup absolute path for %s: %w", file, err)
	}

	return filepath.Rel("/", path) //nolint:wrapcheck
}

func archive(cfg config) (initramfs.Archive, error) {
	var (
		archive initramfs.Archive
		err     error
	)

	archive.Init, err = relPath(cfg.init)
	if err != nil {
		return archive, err
	}

	files := cfg.files
	if cfg.shell != "" {
		files = append([]string{cfg.shell}, files...)
		archive.Links = map[string]string{
			filepath.Join(initramfs.BinDir, "sh"): filepath.Base(cfg.shell),
		}
	}

	for _, file := range files {
		path, err := relPath(file)
		if err != nil {
			return archive, err
		}

		archive.Files = append(archive.Files, path)
	}

	return archive, nil
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	archive, err := archive(cfg)
	if err != nil {
		return err
	}

	output := stdout

	if cfg.output != "" {
		file, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}

		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
		}()

		output = file
	}

	if err := archive.Write(os.DirFS("/"), output); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
