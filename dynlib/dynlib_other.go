//go:build !darwin && !freebsd && !linux && !windows

package dynlib

import "fmt"

func dlopen(path string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic library loading is not supported on this platform")
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	return 0, fmt.Errorf("dynamic library loading is not supported on this platform")
}

func dlclose(handle uintptr) error {
	return nil
}
