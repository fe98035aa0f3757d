package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gradebook/internal/app"
	"github.com/atomicstack/gradebook/internal/i18n"
	"github.com/atomicstack/gradebook/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataDir     = "GRADEBOOK_DATA_DIR"
	envStore       = "GRADEBOOK_STORE"
	envLang        = "GRADEBOOK_LANG"
	envWidth       = "GRADEBOOK_WIDTH"
	envHeight      = "GRADEBOOK_HEIGHT"
	envNoClear     = "GRADEBOOK_NO_CLEAR"
	envNoticeDelay = "GRADEBOOK_NOTICE_DELAY"
	envTrace       = "GRADEBOOK_TRACE"
	envLogFile     = "GRADEBOOK_LOG_FILE"
)

const defaultNoticeDelay = 600 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gradebook", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, defaultDataDir(env)), "directory holding the tables")
	store := fs.String("store", envOrDefault(env, envStore, storage.KindJSON), "storage backend: "+strings.Join(storage.Kinds(), " or "))
	lang := fs.String("lang", envOrDefault(env, envLang, ""), "interface language (en, de, fr); empty uses the saved choice")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	noClear := fs.Bool("no-clear", envOrBool(env, envNoClear, false), "append menus instead of clearing the screen")
	noticeDelay := fs.Duration("notice-delay", envOrDuration(env, envNoticeDelay, defaultNoticeDelay), "how long the invalid-input notice stays visible")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *noticeDelay < 0 {
		return Config{}, fmt.Errorf("notice-delay must be >= 0 (got %s)", *noticeDelay)
	}

	cfg := Config{
		App: app.Config{
			DataDir:     *dataDir,
			Store:       *store,
			Language:    *lang,
			Width:       *width,
			Height:      *height,
			NoClear:     *noClear,
			NoticeDelay: *noticeDelay,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataDir":     *dataDir,
			"store":       *store,
			"lang":        *lang,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"noClear":     strconv.FormatBool(*noClear),
			"noticeDelay": noticeDelay.String(),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultDataDir follows XDG_DATA_HOME, then ~/.local/share.
func defaultDataDir(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_DATA_HOME"]); dir != "" {
		return filepath.Join(dir, "gradebook")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".local", "share", "gradebook")
	}
	return "gradebook-data"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the flag parser cannot catch.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return fmt.Errorf("data-dir must not be empty")
	}
	known := false
	for _, kind := range storage.Kinds() {
		if cfg.App.Store == kind {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown store %q (want %s)", cfg.App.Store, strings.Join(storage.Kinds(), " or "))
	}
	if cfg.App.Language != "" && !i18n.Supported(cfg.App.Language) {
		return fmt.Errorf("unsupported language %q", cfg.App.Language)
	}
	return nil
}
