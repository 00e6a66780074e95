// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inistream

import (
	"context"
)

// MaxWriteOptions is the largest option count a single Write call accepts.
const MaxWriteOptions = 256

// An OptionReader provides indexed access to the options being written.
// Write holds no collection of its own; whatever structure the caller
// stores options in stays behind this interface.
//
// ReadOption is called multiple times per index across grouping passes, so
// it must be side-effect-free and return the same triple for a given index
// on every call. Write does not enforce this.
type OptionReader interface {
	ReadOption(i int) (section, name, value string)
}

// OptionReaderFunc adapts a function to the OptionReader interface.
type OptionReaderFunc func(i int) (section, name, value string)

func (f OptionReaderFunc) ReadOption(i int) (section, name, value string) {
	return f(i)
}

// Write reconstructs section-grouped INI text from n options read through
// src, writing into buf and returning the number of bytes written. The last
// byte of buf is never used; output that would reach it fails with
// ErrBufferFull, leaving buf's content past the last successful append
// unspecified.
//
// Grouping is stable in first-seen order: the unwritten option with the
// lowest index names the next section to emit, and within a section options
// appear in ascending index order. Each section is followed by a blank
// line. Values are written as-is, never quoted; see the package
// documentation for which values need caller-side quoting to survive a
// reparse.
//
// Write panics if src is nil. The context carries the logger for
// diagnostic messages and nothing else; there is no cancellation.
func Write(ctx context.Context, buf []byte, n int, src OptionReader) (int, error) {
	if src == nil {
		panic("inistream.Write: nil option reader")
	}
	if n > MaxWriteOptions {
		return 0, fail(ctx, &Error{Kind: ErrTooManyOptions})
	}
	if n < 0 {
		n = 0
	}
	a := appender{buf: buf}
	written := make([]bool, n)
	for {
		// The first unwritten option names the section for this pass.
		active := ""
		found := false
		for i := 0; i < n; i++ {
			if !written[i] {
				active, _, _ = src.ReadOption(i)
				found = true
				break
			}
		}
		if !found {
			return a.n, nil
		}
		if len(active) > MaxSectionLen {
			return a.n, fail(ctx, &Error{Kind: ErrSectionTooLong, Offset: a.n})
		}
		if err := a.append("[", active, "]\n"); err != nil {
			return a.n, fail(ctx, err)
		}
		for i := 0; i < n; i++ {
			if written[i] {
				continue
			}
			section, name, value := src.ReadOption(i)
			if section != active {
				continue
			}
			if len(name) > MaxNameLen {
				return a.n, fail(ctx, &Error{Kind: ErrNameTooLong, Offset: a.n})
			}
			if len(value) > MaxValueLen {
				return a.n, fail(ctx, &Error{Kind: ErrValueTooLong, Offset: a.n})
			}
			if err := a.append(name, "=", value, "\n"); err != nil {
				return a.n, fail(ctx, err)
			}
			written[i] = true
		}
		if err := a.append("\n"); err != nil {
			return a.n, fail(ctx, err)
		}
	}
}

// An appender copies text into a fixed-capacity buffer, reserving the final
// byte. Appends are monotonic; a failed append leaves n unchanged.
type appender struct {
	buf []byte
	n   int
}

func (a *appender) append(parts ...string) *Error {
	for _, s := range parts {
		if a.n+len(s) > len(a.buf)-1 {
			return &Error{Kind: ErrBufferFull, Offset: a.n}
		}
		a.n += copy(a.buf[a.n:], s)
	}
	return nil
}
