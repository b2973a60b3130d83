// Package dynlib opens native shared libraries and resolves entry point
// addresses from them.
package dynlib

// Library is an open handle to a native shared library.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded native library %s", path)
	return &Library{path: path, handle: handle}, nil
}

// Path returns the file name the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Lookup resolves symbol to its address within the library.  The returned
// address is zero only when err is non-nil.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, err := dlsym(l.handle, symbol)
	if err != nil {
		return 0, err
	}
	log.Tracef("%s resolved %s to %#x", l.path, symbol, addr)
	return addr, nil
}

// Close releases the library handle.  Addresses previously returned by
// Lookup must not be used after Close.
func (l *Library) Close() error {
	return dlclose(l.handle)
}
