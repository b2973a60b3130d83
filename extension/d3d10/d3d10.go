// Package d3d10 implements symbol resolution for the cl_khr_d3d10_sharing
// OpenCL extension.
package d3d10

import (
	"github.com/crosscl/clshim/dynlib"
)

// Name is the extension identifier as reported to OpenCL clients.
const Name = "cl_khr_d3d10_sharing"

// symbolNames lists every entry point cl_khr_d3d10_sharing defines.  A
// lookup for any other name answers not-found regardless of binding state.
var symbolNames = []string{
	"clGetDeviceIDsFromD3D10KHR",
	"clCreateFromD3D10BufferKHR",
	"clCreateFromD3D10Texture2DKHR",
	"clCreateFromD3D10Texture3DKHR",
	"clEnqueueAcquireD3D10ObjectsKHR",
	"clEnqueueReleaseD3D10ObjectsKHR",
}

// addrs maps entry point names to native addresses.  It is populated at most
// once by BindLibrary before the shim starts serving queries and is read-only
// afterwards, so lookups need no synchronization.
var addrs map[string]uintptr

// BindLibrary resolves the extension's entry points against an open native
// library and reports how many were bound.  Entry points the library does
// not export are skipped; they keep answering not-found.  BindLibrary must
// be called before any GetFunction query is served and must not be called
// more than once.
func BindLibrary(lib *dynlib.Library) int {
	bound := make(map[string]uintptr, len(symbolNames))
	for _, name := range symbolNames {
		addr, err := lib.Lookup(name)
		if err != nil {
			log.Debugf("%s not exported by %s: %v", name, lib.Path(), err)
			continue
		}
		bound[name] = addr
	}
	log.Debugf("Bound %d of %d %s entry points from %s", len(bound),
		len(symbolNames), Name, lib.Path())
	addrs = bound
	return len(bound)
}

// GetFunction returns the native address of the named entry point, or zero
// when the name is not part of cl_khr_d3d10_sharing or the entry point has
// not been bound.
func GetFunction(name string) uintptr {
	return addrs[name]
}

// SymbolNames returns the entry point names the extension defines, in a
// fresh slice.
func SymbolNames() []string {
	names := make([]string, len(symbolNames))
	copy(names, symbolNames)
	return names
}
