package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/ada"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if want := filepath.Join("/home/ada", ".local", "share", "gradebook"); cfg.App.DataDir != want {
		t.Fatalf("data dir = %q, want %q", cfg.App.DataDir, want)
	}
	if cfg.App.Store != "json" {
		t.Fatalf("store = %q, want json", cfg.App.Store)
	}
	if cfg.App.NoticeDelay != 600*time.Millisecond {
		t.Fatalf("notice delay = %s", cfg.App.NoticeDelay)
	}
	if cfg.App.NoClear || cfg.Logging.Trace {
		t.Fatalf("unexpected boolean defaults: %+v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadArgsXDGDataHome(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/ada", "XDG_DATA_HOME=/data"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if want := filepath.Join("/data", "gradebook"); cfg.App.DataDir != want {
		t.Fatalf("data dir = %q, want %q", cfg.App.DataDir, want)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"GRADEBOOK_DATA_DIR=/srv/grades",
		"GRADEBOOK_STORE=sqlite",
		"GRADEBOOK_LANG=de",
		"GRADEBOOK_WIDTH=100",
		"GRADEBOOK_HEIGHT=40",
		"GRADEBOOK_NO_CLEAR=true",
		"GRADEBOOK_NOTICE_DELAY=1s",
		"GRADEBOOK_TRACE=1",
		"GRADEBOOK_LOG_FILE=/tmp/g.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	a := cfg.App
	if a.DataDir != "/srv/grades" || a.Store != "sqlite" || a.Language != "de" {
		t.Fatalf("unexpected app config %+v", a)
	}
	if a.Width != 100 || a.Height != 40 || !a.NoClear || a.NoticeDelay != time.Second {
		t.Fatalf("unexpected app config %+v", a)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/g.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"-store", "json", "-lang", "fr", "-width", "60", "-notice-delay", "0s"}
	cfg, err := LoadArgs(args, []string{"GRADEBOOK_STORE=sqlite", "GRADEBOOK_LANG=de", "GRADEBOOK_WIDTH=100"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Store != "json" || cfg.App.Language != "fr" || cfg.App.Width != 60 || cfg.App.NoticeDelay != 0 {
		t.Fatalf("flags did not win: %+v", cfg.App)
	}
	if cfg.Flags["width"] != "60" || cfg.Flags["noticeDelay"] != "0s" {
		t.Fatalf("unexpected flag map %v", cfg.Flags)
	}
	if strings.Join(cfg.Args, " ") != strings.Join(args, " ") {
		t.Fatalf("args not preserved: %v", cfg.Args)
	}
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/h", "GRADEBOOK_WIDTH=wide", "GRADEBOOK_TRACE=maybe", "GRADEBOOK_NOTICE_DELAY=soon"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace || cfg.App.NoticeDelay != 600*time.Millisecond {
		t.Fatalf("expected fallbacks, got %+v", cfg)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-height", "-5"},
		{"-notice-delay", "-1s"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, []string{"HOME=/h"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"sqlite", func(c *Config) { c.App.Store = "sqlite" }, true},
		{"regional language", func(c *Config) { c.App.Language = "de-CH" }, true},
		{"unknown store", func(c *Config) { c.App.Store = "redis" }, false},
		{"unknown language", func(c *Config) { c.App.Language = "ja" }, false},
		{"empty data dir", func(c *Config) { c.App.DataDir = " " }, false},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		err := Validate(cfg)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
