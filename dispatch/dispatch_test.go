package dispatch

import (
	"testing"

	"github.com/crosscl/clshim/extension"
)

func TestSupportedExtensions(t *testing.T) {
	names := SupportedExtensions()
	entries := extension.Known()
	if len(names) != len(entries) {
		t.Fatalf("got %d names, want %d", len(names), len(entries))
	}
	for i, e := range entries {
		if names[i] != e.Name {
			t.Errorf("name %d = %q, want %q (registry order must hold)",
				i, names[i], e.Name)
		}
	}
}

func TestGetExtensionFunctionAddressUnknown(t *testing.T) {
	tests := []string{
		"clGetGLObjectInfo",
		"clIcdGetPlatformIDsKHR",
		"",
	}
	for _, symbol := range tests {
		if addr := GetExtensionFunctionAddress(symbol); addr != 0 {
			t.Errorf("GetExtensionFunctionAddress(%q) = %#x, want 0",
				symbol, addr)
		}
	}
}

func TestGetExtensionFunctionAddressAgreesWithRegistry(t *testing.T) {
	// Whatever each registered resolver answers for its own symbols, the
	// dispatch result must agree with a direct registry walk.
	symbol := "clGetDeviceIDsFromD3D10KHR"

	var want uintptr
	for _, e := range extension.Known() {
		if addr := extension.Resolve(e, symbol); addr != 0 {
			want = addr
			break
		}
	}

	if got := GetExtensionFunctionAddress(symbol); got != want {
		t.Errorf("GetExtensionFunctionAddress(%s) = %#x, want %#x",
			symbol, got, want)
	}
}
