//go:build windows

package dynlib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dlopen(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("could not load %s: %v", path, err)
	}
	return uintptr(handle), nil
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), symbol)
	if err != nil {
		return 0, fmt.Errorf("could not resolve %s: %v", symbol, err)
	}
	return addr, nil
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
