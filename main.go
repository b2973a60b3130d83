package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/crosscl/clshim/dispatch"
	"github.com/crosscl/clshim/dynlib"
	"github.com/crosscl/clshim/extension"
	"github.com/crosscl/clshim/extension/d3d10"
	"github.com/davecgh/go-spew/spew"
)

var (
	cfg *config
)

func clshimMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version at startup.
	mainLog.Infof("Version %s (Go version %s)", version(), runtime.Version())

	// Enable http profiling server if requested.
	if cfg.Profile != "" {
		go func() {
			listenAddr := net.JoinHostPort("", cfg.Profile)
			mainLog.Infof("Creating profiling server "+
				"listening on %s", listenAddr)
			profileRedirect := http.RedirectHandler("/debug/pprof",
				http.StatusSeeOther)
			http.Handle("/", profileRedirect)
			err := http.ListenAndServe(listenAddr, nil)
			if err != nil {
				mainLog.Errorf("Unable to create profiler: %v", err)
				os.Exit(1)
			}
		}()
	}

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			mainLog.Errorf("Unable to create cpu profile: %v", err)
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	// Write mem profile if requested.
	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			mainLog.Errorf("Unable to create mem profile: %v", err)
			return err
		}
		timer := time.NewTimer(time.Minute * 20) // 20 minutes
		go func() {
			<-timer.C
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Bind extension entry points against the native library when one was
	// given.  Without a library every resolver keeps answering not-found,
	// which is a valid (if uninteresting) shim state.
	if cfg.Library != "" {
		lib, err := dynlib.Open(cfg.Library)
		if err != nil {
			mainLog.Errorf("Unable to open native library: %v", err)
			return err
		}
		defer lib.Close()

		bound := d3d10.BindLibrary(lib)
		mainLog.Infof("Bound %d %s entry points from %s", bound,
			d3d10.Name, cfg.Library)
	}

	mainLog.Tracef("Extension registry: %s", spew.Sdump(extension.Known()))

	if cfg.List {
		listExtensions()
	}

	if cfg.Symbol != "" {
		resolveSymbol(cfg.Extension, cfg.Symbol)
	}

	if len(cfg.APIListeners) != 0 {
		go RunMonitor()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		mainLog.Info("Interrupt received, shutting down")
	}

	return nil
}

// listExtensions prints each registered extension together with the entry
// points it defines.
func listExtensions() {
	for _, e := range extension.Known() {
		fmt.Println(e.Name)
		for _, symbol := range extensionSymbols(e.Name) {
			marker := " "
			if extension.Resolve(e, symbol) != 0 {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, symbol)
		}
	}
}

// resolveSymbol answers a single clGetExtensionFunctionAddress style query.
// When extName is empty every registered extension is consulted, matching
// what the dispatch layer does for OpenCL clients.
func resolveSymbol(extName, symbol string) {
	var addr uintptr
	if extName != "" {
		e, ok := extension.Find(extName)
		if !ok {
			fmt.Printf("%s: extension not supported\n", extName)
			return
		}
		addr = extension.Resolve(e, symbol)
	} else {
		addr = dispatch.GetExtensionFunctionAddress(symbol)
	}

	if addr == 0 {
		fmt.Printf("%s: extension function not available\n", symbol)
		return
	}
	fmt.Printf("%s: %#x\n", symbol, addr)
}

// extensionSymbols returns the entry point names an extension defines, for
// the extensions whose symbol tables the shim carries.
func extensionSymbols(name string) []string {
	switch name {
	case d3d10.Name:
		return d3d10.SymbolNames()
	}
	return nil
}

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := clshimMain(); err != nil {
		os.Exit(1)
	}
}
