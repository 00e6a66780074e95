// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

// quoteValue returns v quoted and escaped if it would not survive a
// reparse when written as-is, and v unchanged otherwise. Values coming out
// of the parser never contain semicolons or carriage returns, so the only
// hazards are surrounding spaces, newlines, and a leading quote.
func quoteValue(v string) string {
	if !needsQuoting(v) {
		return v
	}
	buf := make([]byte, 0, len(v)+2)
	buf = append(buf, '"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '"':
			buf = append(buf, '\\', '"')
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

func needsQuoting(v string) bool {
	if v == "" {
		return false
	}
	if v[0] == ' ' || v[0] == '\t' || v[0] == '"' || v[len(v)-1] == ' ' {
		return true
	}
	for i := 0; i < len(v); i++ {
		if v[i] == '\n' {
			return true
		}
	}
	return false
}
