// Copyright (c) 2016-2023 The Decred developers.

package util

import (
	"strings"
)

// SplitExtensionString splits a space separated OpenCL extension string, as
// reported for CL_PLATFORM_EXTENSIONS or CL_DEVICE_EXTENSIONS, into its
// extension names.  Runs of whitespace and leading or trailing whitespace
// produce no empty names.
func SplitExtensionString(s string) []string {
	return strings.Fields(s)
}

// HasExtension reports whether the space separated extension string s
// contains the extension name as an exact token.  A name that is merely a
// prefix of a listed extension does not match.
func HasExtension(s, name string) bool {
	if name == "" {
		return false
	}
	for _, ext := range strings.Fields(s) {
		if ext == name {
			return true
		}
	}
	return false
}

// JoinExtensions builds a space separated extension string from names,
// skipping empty entries.
func JoinExtensions(names []string) string {
	nonEmpty := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			nonEmpty = append(nonEmpty, name)
		}
	}
	return strings.Join(nonEmpty, " ")
}
