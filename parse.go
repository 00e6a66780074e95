// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inistream

import (
	"context"
)

// Token limits, in bytes. Tokens at the limit parse successfully; one byte
// over fails with the corresponding TooLong error.
const (
	MaxSectionLen = 31
	MaxNameLen    = 31
	MaxValueLen   = 63
)

// A VisitFunc receives one parsed property. Properties before the first
// section header are delivered with an empty section.
type VisitFunc func(section, name, value string)

// Parse parses INI text, calling visit exactly once per property in
// document order. Parsing is fail-fast: the first malformed construct stops
// the whole call with a *Error carrying the failure kind and byte offset,
// and visit is not called for the construct in progress.
//
// Parse panics if visit is nil. The context carries the logger for
// diagnostic messages and nothing else; there is no cancellation.
func Parse(ctx context.Context, src string, visit VisitFunc) error {
	if visit == nil {
		panic("inistream.Parse: nil visit function")
	}
	var (
		section = make([]byte, 0, MaxSectionLen)
		name    = make([]byte, 0, MaxNameLen)
		value   = make([]byte, 0, MaxValueLen)
		err     *Error
	)
	c := cursor{src: src}
	for {
		c = c.skipToToken()
		if c.eof() {
			return nil
		}
		switch c.peek() {
		case '[':
			section, c, err = parseSection(c, section)
			if err != nil {
				return fail(ctx, err)
			}
		case ';':
			c = c.nextLine()
		default:
			name, c, err = parseName(c, name)
			if err != nil {
				return fail(ctx, err)
			}
			c, err = c.consumeEquals()
			if err != nil {
				return fail(ctx, err)
			}
			value, c, err = parseValue(c, value)
			if err != nil {
				return fail(ctx, err)
			}
			visit(string(section), string(name), string(value))
		}
	}
}

// parseSection consumes a '[name]' header into dst. The empty header '[]'
// is accepted and resets to the global section; Write emits it for options
// with no section.
func parseSection(c cursor, dst []byte) ([]byte, cursor, *Error) {
	dst = dst[:0]
	if c.peek() != '[' {
		return dst, c, &Error{Kind: ErrMalformedSection, Offset: c.off}
	}
	c = c.next()
	for !c.eof() && c.peek() != ']' {
		b := c.peek()
		if !isSectionChar(b) {
			return dst, c, &Error{Kind: ErrMalformedSection, Offset: c.off}
		}
		if len(dst) >= MaxSectionLen {
			return dst, c, &Error{Kind: ErrSectionTooLong, Offset: c.off}
		}
		dst = append(dst, b)
		c = c.next()
	}
	if c.eof() {
		return dst, c, &Error{Kind: ErrMalformedSection, Offset: c.off}
	}
	return dst, c.next(), nil
}

// parseName consumes an option name into dst, stopping at a space or '='.
func parseName(c cursor, dst []byte) ([]byte, cursor, *Error) {
	dst = dst[:0]
	start := c.off
	for !c.eof() && c.peek() != ' ' && c.peek() != '=' {
		b := c.peek()
		if !isNameChar(b) {
			return dst, c, &Error{Kind: ErrMalformedName, Offset: c.off}
		}
		if len(dst) >= MaxNameLen {
			return dst, c, &Error{Kind: ErrNameTooLong, Offset: c.off}
		}
		dst = append(dst, b)
		c = c.next()
	}
	if len(dst) == 0 {
		return dst, c, &Error{Kind: ErrEmptyName, Offset: start}
	}
	return dst, c, nil
}

// parseValue dispatches on the leading character: a double quote selects
// the quoted production, anything else the unquoted one.
func parseValue(c cursor, dst []byte) ([]byte, cursor, *Error) {
	if c.peek() == '"' {
		return parseQuotedValue(c, dst)
	}
	return parseUnquotedValue(c, dst)
}

// parseUnquotedValue consumes printable characters and tabs up to a
// newline, carriage return, or comment, then trims trailing spaces from the
// captured token. The trim happens after capture, so trailing spaces count
// against the capacity.
func parseUnquotedValue(c cursor, dst []byte) ([]byte, cursor, *Error) {
	dst = dst[:0]
	for !c.eof() {
		b := c.peek()
		if b == '\n' || b == '\r' || b == ';' {
			break
		}
		if !isPrint(b) && b != '\t' {
			return dst, c, &Error{Kind: ErrMalformedValue, Offset: c.off}
		}
		if len(dst) >= MaxValueLen {
			return dst, c, &Error{Kind: ErrValueTooLong, Offset: c.off}
		}
		dst = append(dst, b)
		c = c.next()
	}
	for len(dst) > 0 && dst[len(dst)-1] == ' ' {
		dst = dst[:len(dst)-1]
	}
	return dst, c, nil
}

// parseQuotedValue consumes a double-quoted value into dst, decoding the
// escapes \" \\ \t \n. No trimming is performed: quoting is the way to
// express values with meaningful leading or trailing whitespace. An
// unescaped interior quote ends the token; the text after it is left
// unconsumed.
func parseQuotedValue(c cursor, dst []byte) ([]byte, cursor, *Error) {
	dst = dst[:0]
	if c.peek() != '"' {
		return dst, c, &Error{Kind: ErrMalformedValue, Offset: c.off}
	}
	c = c.next()
	for !c.eof() {
		b := c.peek()
		if b == '"' || b == '\n' || b == '\r' || b == ';' {
			break
		}
		if b == '\\' {
			c = c.next()
			switch c.peek() {
			case '"':
				b = '"'
			case '\\':
				b = '\\'
			case 't':
				b = '\t'
			case 'n':
				b = '\n'
			default:
				return dst, c, &Error{Kind: ErrInvalidEscape, Offset: c.off}
			}
			c = c.next()
		} else {
			if !isPrint(b) && b != '\t' {
				return dst, c, &Error{Kind: ErrMalformedValue, Offset: c.off}
			}
			c = c.next()
		}
		if len(dst) >= MaxValueLen {
			return dst, c, &Error{Kind: ErrValueTooLong, Offset: c.off}
		}
		dst = append(dst, b)
	}
	if c.peek() != '"' {
		return dst, c, &Error{Kind: ErrUnterminatedQuote, Offset: c.off}
	}
	return dst, c.next(), nil
}
