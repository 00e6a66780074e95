// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inistream

// A cursor is an immutable position within source text. Advancing returns a
// new cursor; the source is never modified.
type cursor struct {
	src string
	off int
}

func (c cursor) eof() bool {
	return c.off >= len(c.src)
}

func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

func (c cursor) next() cursor {
	return cursor{src: c.src, off: c.off + 1}
}

// skipLineSpace advances past spaces and control characters, stopping at a
// newline or the first other character.
func (c cursor) skipLineSpace() cursor {
	for !c.eof() {
		b := c.peek()
		if b == '\n' || (b != ' ' && !isCtrl(b)) {
			break
		}
		c = c.next()
	}
	return c
}

// skipToToken advances past spaces and control characters, newlines
// included. Used between top-level constructs.
func (c cursor) skipToToken() cursor {
	for !c.eof() {
		b := c.peek()
		if b != ' ' && !isCtrl(b) {
			break
		}
		c = c.next()
	}
	return c
}

// nextLine advances to and past the next run of newlines. Used to discard
// comment lines.
func (c cursor) nextLine() cursor {
	for !c.eof() && c.peek() != '\n' {
		c = c.next()
	}
	for !c.eof() && c.peek() == '\n' {
		c = c.next()
	}
	return c
}

// consumeEquals skips line whitespace, requires a literal '=', and skips
// line whitespace after it.
func (c cursor) consumeEquals() (cursor, *Error) {
	c = c.skipLineSpace()
	if c.peek() != '=' {
		return c, &Error{Kind: ErrEqualityNotFound, Offset: c.off}
	}
	return c.next().skipLineSpace(), nil
}

// Character classification is byte-oriented over the basic execution set;
// bytes outside ASCII are not valid token characters.

func isCtrl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

func isAlnum(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

func isSectionChar(b byte) bool {
	return isAlnum(b) || b == '-' || b == '_' || b == ' '
}

func isNameChar(b byte) bool {
	return isAlnum(b) || b == '.' || b == '-' || b == '_'
}
