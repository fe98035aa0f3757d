package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/gradebook/internal/app"
	"github.com/atomicstack/gradebook/internal/config"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the session started with: flags, paths
// and whether the standard descriptors are terminals.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"tty":     collectTTYDetails(),
		"dataDir": describeDir(cfg.App.DataDir),
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
	return payload
}

func describeDir(path string) map[string]interface{} {
	info := map[string]interface{}{"path": path}
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		info["exists"] = fi.IsDir()
	case os.IsNotExist(err):
		info["exists"] = false
	default:
		info["error"] = err.Error()
	}
	return info
}

type ttyDetails struct {
	// Menus need a terminal on stdin; forms also draw on stdout.
	Interactive bool             `json:"interactive"`
	Probes      []ttyProbeResult `json:"probes"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func collectTTYDetails() ttyDetails {
	probes := []ttyProbeResult{
		probeTTY("stdin", os.Stdin),
		probeTTY("stdout", os.Stdout),
		probeTTY("stderr", os.Stderr),
	}
	return ttyDetails{
		Interactive: probes[0].IsTerminal && probes[1].IsTerminal,
		Probes:      probes,
	}
}

func probeTTY(name string, f *os.File) ttyProbeResult {
	res := ttyProbeResult{Name: name}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return res
	}
	res.IsTerminal = true
	if width, height, err := term.GetSize(fd); err == nil {
		res.Width, res.Height = width, height
	} else {
		res.Error = err.Error()
	}
	return res
}
