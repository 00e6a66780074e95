// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package inistream provides a streaming parser and serializer for a small
INI dialect. See https://en.wikipedia.org/wiki/INI_file.

Unlike a document-model parser, this package never builds an in-memory
representation of the file. Parse delivers each property to a visitor
function as it is recognized, and Write reconstructs grouped INI text from
options addressed through a caller-supplied indexed reader. Both operate on
in-memory text only; opening files and choosing encodings are the caller's
concern.

# Syntax

A document is a sequence of blank lines, comments, section headers, and
properties. A property is a name and value on one line, separated by an
equals sign ('='):

	name=value

Names consist of ASCII letters, digits, '.', '-', and '_'. A section header
is a name in square brackets on its own line and scopes the properties that
follow it until the next header:

	[section]
	name=value

Section names consist of ASCII letters, digits, '-', '_', and spaces.
Properties before the first header belong to the global section, identified
by the empty string. A line whose first non-whitespace character is a
semicolon (';') is a comment; a semicolon after a value starts a trailing
comment.

Unquoted values may contain printable ASCII and tabs; trailing spaces are
trimmed. Values surrounded by double quotes ('"') preserve leading and
trailing whitespace and may use the escape sequences:

	\n    U+000A line feed or newline
	\t    U+0009 horizontal tab
	\\    U+005C backslash
	\"    U+0022 double quote

Write never quotes values on its own. Values that begin with a double
quote, contain newlines, or carry leading or trailing spaces must be quoted
by the caller to survive a reparse. Semicolons and carriage returns
terminate both value forms and cannot appear in a value at all.

# Limits

Tokens are bounded: section names and option names are at most 31 bytes,
values at most 63 bytes, and a single Write call accepts at most 256
options. Exceeding a bound fails with the corresponding Error kind.
*/
package inistream
