// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inistream

import (
	"context"
	"fmt"

	"zombiezen.com/go/log"
)

// ErrorKind identifies the validation failure that stopped a Parse or Write
// call. None of the failures are retryable.
type ErrorKind int

// Parse and Write failure kinds.
const (
	ErrMalformedSection ErrorKind = iota + 1
	ErrEqualityNotFound
	ErrUnterminatedQuote
	ErrEmptyName
	ErrMalformedName
	ErrMalformedValue
	ErrInvalidEscape
	ErrSectionTooLong
	ErrNameTooLong
	ErrValueTooLong
	ErrTooManyOptions
	ErrBufferFull
)

// String returns a short human-readable description of the failure.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedSection:
		return "malformed section"
	case ErrEqualityNotFound:
		return "equality not found"
	case ErrUnterminatedQuote:
		return "unterminated quoted value"
	case ErrEmptyName:
		return "empty option name"
	case ErrMalformedName:
		return "invalid character in name"
	case ErrMalformedValue:
		return "invalid character in value"
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrSectionTooLong:
		return "section too long"
	case ErrNameTooLong:
		return "name too long"
	case ErrValueTooLong:
		return "value too long"
	case ErrTooManyOptions:
		return "too many options"
	case ErrBufferFull:
		return "output buffer full"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// An Error is the failure result of a Parse or Write call. Offset is the
// byte offset of the failing construct in the source text for Parse, or the
// number of output bytes successfully written for Write.
type Error struct {
	Kind   ErrorKind
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("ini: %v at offset %d", e.Kind, e.Offset)
}

// fail reports e on the diagnostic side channel and returns it. Callers
// must branch on the returned error, never on the log output.
func fail(ctx context.Context, e *Error) error {
	log.Debugf(ctx, "%v", e)
	return e
}
