// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command inifmt reads INI text from a file or stdin, regroups its options
// by section, and prints the result to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yourbase/inistream"
	"github.com/yourbase/inistream/envvar"
)

type option struct {
	section, name, value string
}

func main() {
	size := flag.Int("size", envvar.Int("INIFMT_BUFFER_SIZE", 1<<16), "output buffer capacity in bytes")
	plain := flag.Bool("plain", envvar.Bool("INIFMT_PLAIN"), "write values as-is instead of quoting ones that would not reparse")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: inifmt [options] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(64)
	}
	if err := run(context.Background(), *size, *plain, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "inifmt: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, size int, plain bool, path string) error {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var opts []option
	err = inistream.Parse(ctx, string(data), func(section, name, value string) {
		opts = append(opts, option{section, name, value})
	})
	if err != nil {
		return err
	}
	if !plain {
		for i := range opts {
			opts[i].value = quoteValue(opts[i].value)
		}
	}

	buf := make([]byte, size)
	n, err := inistream.Write(ctx, buf, len(opts), inistream.OptionReaderFunc(func(i int) (section, name, value string) {
		return opts[i].section, opts[i].name, opts[i].value
	}))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(buf[:n])
	return err
}
