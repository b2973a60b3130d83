package d3d10

import "testing"

func TestGetFunctionUnbound(t *testing.T) {
	for _, name := range symbolNames {
		if addr := GetFunction(name); addr != 0 {
			t.Errorf("unbound %s resolved to %#x, want 0", name, addr)
		}
	}
	if addr := GetFunction("clGetGLObjectInfo"); addr != 0 {
		t.Errorf("foreign symbol resolved to %#x, want 0", addr)
	}
}

func TestGetFunctionBound(t *testing.T) {
	defer func(prev map[string]uintptr) { addrs = prev }(addrs)
	addrs = map[string]uintptr{
		"clGetDeviceIDsFromD3D10KHR": 0xdead,
	}

	if addr := GetFunction("clGetDeviceIDsFromD3D10KHR"); addr != 0xdead {
		t.Errorf("bound symbol resolved to %#x, want 0xdead", addr)
	}

	// Symbols of the extension that were not bound still answer not-found.
	if addr := GetFunction("clCreateFromD3D10BufferKHR"); addr != 0 {
		t.Errorf("unbound symbol resolved to %#x, want 0", addr)
	}

	// Names outside the extension answer not-found even while bound.
	if addr := GetFunction("clUnloadCompiler"); addr != 0 {
		t.Errorf("foreign symbol resolved to %#x, want 0", addr)
	}
}

func TestSymbolNames(t *testing.T) {
	names := SymbolNames()
	if len(names) != 6 {
		t.Fatalf("got %d entry points, want 6", len(names))
	}

	// Mutating the returned slice must not affect later calls.
	names[0] = "clBogusKHR"
	again := SymbolNames()
	if again[0] != "clGetDeviceIDsFromD3D10KHR" {
		t.Errorf("SymbolNames returned aliased storage: got %s", again[0])
	}
}
