package main

import (
	"encoding/json"
	"net/http"

	"github.com/crosscl/clshim/extension"
	"github.com/crosscl/clshim/util"
)

type ShimStatus struct {
	Version         string `json:"version"`
	ExtensionString string `json:"extensionString"`

	Extensions []*ExtensionStatus `json:"extensions"`
}

type ExtensionStatus struct {
	Name string `json:"name"`

	EntryPoints []*EntryPointStatus `json:"entryPoints,omitempty"`
}

type EntryPointStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

func RunMonitor() {
	if len(cfg.APIListeners) != 0 {
		http.HandleFunc("/", getShimStatus)

		for _, addr := range cfg.APIListeners {
			err := http.ListenAndServe(addr, nil)

			if err != nil {
				mainLog.Warnf("Unable to create monitor: %v", err)
				return
			}
		}
	}
}

func getShimStatus(w http.ResponseWriter, req *http.Request) {
	entries := extension.Known()

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	ss := &ShimStatus{
		Version:         version(),
		ExtensionString: util.JoinExtensions(names),
	}

	for _, e := range entries {
		es := &ExtensionStatus{Name: e.Name}
		for _, symbol := range extensionSymbols(e.Name) {
			es.EntryPoints = append(es.EntryPoints, &EntryPointStatus{
				Name:      symbol,
				Available: extension.Resolve(e, symbol) != 0,
			})
		}
		ss.Extensions = append(ss.Extensions, es)
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ss)
}
