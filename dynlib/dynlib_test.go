package dynlib

import "testing"

func TestOpenMissingLibrary(t *testing.T) {
	lib, err := Open("clshim-no-such-library.so.0")
	if err == nil {
		lib.Close()
		t.Fatal("expected an error opening a library that does not exist")
	}
}
