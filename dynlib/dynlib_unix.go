//go:build darwin || freebsd || linux

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dlopen(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("could not load %s: %v", path, err)
	}
	return handle, nil
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("could not resolve %s: %v", symbol, err)
	}
	return addr, nil
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}
