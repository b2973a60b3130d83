package extension

import (
	"sync"
	"testing"

	"github.com/crosscl/clshim/extension/d3d10"
)

func TestFindKnown(t *testing.T) {
	e, ok := Find("cl_khr_d3d10_sharing")
	if !ok {
		t.Fatal("cl_khr_d3d10_sharing not found in registry")
	}
	if e.Name != "cl_khr_d3d10_sharing" {
		t.Errorf("got name %q, want cl_khr_d3d10_sharing", e.Name)
	}
	if e.GetFunction == nil {
		t.Fatal("entry has no resolver")
	}

	// The entry's resolver is the d3d10 one: it must agree with the package
	// resolver on both a symbol of the extension and a foreign name.
	for _, symbol := range []string{
		"clGetDeviceIDsFromD3D10KHR",
		"clGetGLObjectInfo",
	} {
		if got, want := e.GetFunction(symbol), d3d10.GetFunction(symbol); got != want {
			t.Errorf("resolver(%s) = %#x, want %#x", symbol, got, want)
		}
	}
}

func TestFindUnknown(t *testing.T) {
	tests := []string{
		"cl_khr_gl_sharing",
		"cl_khr_icd",
		"CL_KHR_D3D10_SHARING", // case sensitive
		"cl_khr_d3d10_sharing ",
		"",
	}
	for _, name := range tests {
		if e, ok := Find(name); ok {
			t.Errorf("Find(%q) unexpectedly returned %q", name, e.Name)
		}
	}
}

func TestResolveDelegates(t *testing.T) {
	var gotSymbol string
	e := Entry{
		Name: "cl_test_probe",
		GetFunction: func(name string) uintptr {
			gotSymbol = name
			return 0xbeef
		},
	}

	if addr := Resolve(e, "clProbeKHR"); addr != 0xbeef {
		t.Errorf("Resolve = %#x, want 0xbeef", addr)
	}
	if gotSymbol != "clProbeKHR" {
		t.Errorf("resolver saw symbol %q, want clProbeKHR", gotSymbol)
	}

	// Scenario from the d3d10 row: either a real address or not-found is
	// acceptable, and Resolve must report exactly what the resolver does.
	d3, ok := Find("cl_khr_d3d10_sharing")
	if !ok {
		t.Fatal("cl_khr_d3d10_sharing not found in registry")
	}
	symbol := "clGetDeviceIDsFromD3D10KHR"
	if got, want := Resolve(d3, symbol), d3.GetFunction(symbol); got != want {
		t.Errorf("Resolve(%s) = %#x, want %#x", symbol, got, want)
	}
}

func TestUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range knownExtensions {
		if seen[e.Name] {
			t.Errorf("duplicate registry entry %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestKnownIsCopy(t *testing.T) {
	entries := Known()
	if len(entries) == 0 {
		t.Fatal("empty registry")
	}
	entries[0].Name = "cl_bogus"

	again := Known()
	if again[0].Name != knownExtensions[0].Name {
		t.Errorf("Known returned aliased storage: got %q", again[0].Name)
	}
}

func TestRepeatedQueriesStable(t *testing.T) {
	first := Known()
	for i := 0; i < 100; i++ {
		entries := Known()
		if len(entries) != len(first) {
			t.Fatalf("registry size changed between queries: %d != %d",
				len(entries), len(first))
		}
		for j := range entries {
			if entries[j].Name != first[j].Name {
				t.Fatalf("registry order changed between queries")
			}
		}
	}
}

func TestConcurrentFind(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if _, ok := Find("cl_khr_d3d10_sharing"); !ok {
					t.Error("known extension not found")
					return
				}
				if _, ok := Find("cl_khr_gl_sharing"); ok {
					t.Error("unknown extension found")
					return
				}
			}
		}()
	}
	wg.Wait()
}
