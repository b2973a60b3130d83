// Package extension is the registry of OpenCL extensions the shim knows
// about.  Each extension supplies its own entry point resolver behind a
// uniform signature; the dispatch layer consults the registry to answer
// clGetExtensionFunctionAddress queries.
package extension

import (
	"github.com/crosscl/clshim/extension/d3d10"
)

// GetFunctionFunc resolves a single entry point within an extension.  It
// returns the native address of the entry point, or zero when the extension
// does not implement a function by that name.  Not-found is a normal result,
// not an error.
type GetFunctionFunc func(name string) uintptr

// Entry associates an extension name with its entry point resolver.
type Entry struct {
	Name        string
	GetFunction GetFunctionFunc
}

// knownExtensions is the registry.  It is built once at load time and never
// mutated, so it is safe for unsynchronized concurrent reads.  Names must be
// unique; lookups take the first match.
var knownExtensions = []Entry{
	{Name: d3d10.Name, GetFunction: d3d10.GetFunction},
}

// Find returns the registry entry whose name exactly matches name.  The
// match is case sensitive.  The second return value reports whether the
// extension is known.
func Find(name string) (Entry, bool) {
	for _, e := range knownExtensions {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve returns the address of the named entry point within the extension,
// or zero when the extension does not implement it.
func Resolve(e Entry, symbol string) uintptr {
	return e.GetFunction(symbol)
}

// Known returns every registered extension in registry order.  The slice is
// a fresh copy on each call.
func Known() []Entry {
	entries := make([]Entry, len(knownExtensions))
	copy(entries, knownExtensions)
	return entries
}
