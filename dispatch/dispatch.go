// Package dispatch answers extension function address queries from the
// extension registry.  It covers the clGetExtensionFunctionAddress path
// only; ICD dispatch and platform enumeration are handled by the native
// layer the shim wraps.
package dispatch

import (
	"github.com/crosscl/clshim/extension"
)

// GetExtensionFunctionAddress returns the address of the named extension
// entry point, asking every registered extension in registry order.  A zero
// result means no extension implements the symbol; OpenCL clients treat
// that as "extension function not available", not as an error.
func GetExtensionFunctionAddress(symbol string) uintptr {
	for _, e := range extension.Known() {
		if addr := extension.Resolve(e, symbol); addr != 0 {
			log.Tracef("%s resolved by %s to %#x", symbol, e.Name, addr)
			return addr
		}
	}
	log.Tracef("%s not implemented by any registered extension", symbol)
	return 0
}

// SupportedExtensions returns the names of every registered extension in
// registry order.
func SupportedExtensions() []string {
	entries := extension.Known()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
