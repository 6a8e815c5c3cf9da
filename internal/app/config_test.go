package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-sim", "lone-ant",
		"-scale", "2",
		"-interval", "250ms",
		"-seed", "7",
		"-set", "ants=4",
		"-set", "food=1,2,3,4",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "lone-ant" || cfg.Scale != 2 || cfg.Interval != 250*time.Millisecond || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Set["ants"] != "4" || cfg.Set["food"] != "1,2,3,4" {
		t.Fatalf("unexpected settings %v", cfg.Set)
	}
	if got := cfg.Set.String(); got != "ants=4,food=1,2,3,4" {
		t.Fatalf("Settings.String = %q", got)
	}
}

func TestSettingsRejectsBareKeys(t *testing.T) {
	s := Settings{}
	if err := s.Set("ants"); err == nil {
		t.Fatal("expected error for a setting without '='")
	}
	if err := s.Set("=4"); err == nil {
		t.Fatal("expected error for an empty key")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "ants", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "ants=3") {
		t.Fatalf("unexpected log output %q", out)
	}
	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("expected error for an unknown level")
	}
}

func TestBuildGround(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "lone-ant"
	cfg.Seed = 21
	cfg.Set["h"] = "300"
	g, err := BuildGround(cfg, nil)
	if err != nil {
		t.Fatalf("BuildGround: %v", err)
	}
	if g.Name() != "lone-ant" || g.Seed() != 21 || g.Size().H != 300 {
		t.Fatalf("unexpected ground %s seed=%d size=%+v", g.Name(), g.Seed(), g.Size())
	}

	cfg.Sim = "missing"
	if _, err := BuildGround(cfg, nil); err == nil {
		t.Fatal("expected error for an unknown sim")
	}
}
