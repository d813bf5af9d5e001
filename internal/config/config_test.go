package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.CountdownSeconds != 30 {
		t.Errorf("countdown = %d, want 30", cfg.CountdownSeconds)
	}
	if cfg.Countdown().Seconds() != 30 {
		t.Errorf("countdown duration = %s, want 30s", cfg.Countdown())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WINEY_ADDR", ":9999")
	t.Setenv("WINEY_COUNTDOWN_SECONDS", "5")
	t.Setenv("WINEY_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.CountdownSeconds != 5 || !cfg.Debug {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsNonPositiveCountdown(t *testing.T) {
	t.Setenv("WINEY_COUNTDOWN_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected zero countdown to be rejected")
	}
}
