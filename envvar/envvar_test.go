// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package envvar

import "testing"

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"no", false},
		{"bork", false},
	}
	for _, test := range tests {
		t.Setenv("ENVVAR_TEST_BOOL", test.value)
		if got := Bool("ENVVAR_TEST_BOOL"); got != test.want {
			t.Errorf("Bool with value %q = %t; want %t", test.value, got, test.want)
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 42},
		{"7", 7},
		{"-3", -3},
		{"bork", 42},
		{"1.5", 42},
	}
	for _, test := range tests {
		t.Setenv("ENVVAR_TEST_INT", test.value)
		if got := Int("ENVVAR_TEST_INT", 42); got != test.want {
			t.Errorf("Int with value %q = %d; want %d", test.value, got, test.want)
		}
	}
}
