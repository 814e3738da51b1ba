package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/cmenu/internal/app"
	"github.com/atomicstack/cmenu/internal/config"
	"github.com/atomicstack/cmenu/internal/format/table"
	"github.com/atomicstack/cmenu/internal/logging"
	"github.com/atomicstack/cmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if runtimeCfg.List {
		printMenus(os.Stdout, runtimeCfg.App.Menus)
		return
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printMenus writes one line per configured menu with its trigger and chain.
func printMenus(w io.Writer, specs []app.MenuSpec) {
	rows := [][]string{{"ID", "BUTTON", "ITEMS", "CHAIN"}}
	for _, spec := range specs {
		steps := make([]string, 0, len(spec.Chain))
		for _, action := range spec.Chain {
			steps = append(steps, action.String())
		}
		rows = append(rows, []string{
			spec.ID,
			spec.Button.String(),
			strconv.Itoa(len(spec.Items)),
			strings.Join(steps, " → "),
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}) {
		fmt.Fprintln(w, line)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	menus := make([]string, 0, len(cfg.App.Menus))
	for _, spec := range cfg.App.Menus {
		menus = append(menus, spec.ID)
	}
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"menus": menus,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals. Mouse
// reporting only works when the program owns one.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd < 0 || !term.IsTerminal(fd) {
			results = append(results, entry)
			continue
		}
		entry.IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Width, entry.Height = width, height
			if detected == nil {
				detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
