package demoncoin

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
)

func testEnv(vars map[string]string) env.Options {
	return env.Options{Prefix: EnvPrefix, Environment: vars}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(testEnv(map[string]string{}))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.AssetDir != "assets" || cfg.TuningFile != "" || cfg.Volume != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig(testEnv(map[string]string{
		"DEMONCOIN_WIDTH":      "1024",
		"DEMONCOIN_ASSETS":     "/srv/assets",
		"DEMONCOIN_VOLUME":     "3",
		"DEMONCOIN_DEBUG":      "true",
		"DEMONCOIN_LOG_FORMAT": "json",
	}))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Width != 1024 || cfg.AssetDir != "/srv/assets" || !cfg.Debug {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Volume != 1 {
		t.Errorf("Volume = %f, want clamped to 1", cfg.Volume)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := parseConfig(testEnv(map[string]string{"DEMONCOIN_WIDTH": "wide"})); err == nil {
		t.Error("expected error for non-numeric width")
	}
	if _, err := parseConfig(testEnv(map[string]string{"DEMONCOIN_HEIGHT": "0"})); err == nil {
		t.Error("expected error for zero height")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogFormat: "json", LogLevel: "warn"}.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("output = %q", out)
	}

	dbg := Config{LogLevel: "error", Debug: true}.NewLogger(&buf)
	if !dbg.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug flag should enable debug level")
	}
}
