package game

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CameraDevice != 0 {
		t.Fatalf("camera = %d", cfg.CameraDevice)
	}
	if cfg.TimeLimit != 60 {
		t.Fatalf("time limit = %d", cfg.TimeLimit)
	}
	if cfg.AssetsDir != "assets" {
		t.Fatalf("assets dir = %q", cfg.AssetsDir)
	}
	if cfg.ModelPath == "" || cfg.ScoresPath == "" {
		t.Fatal("empty default paths")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FINGERSNAKE_CAMERA", "2")
	t.Setenv("FINGERSNAKE_TIME_LIMIT", "90")
	t.Setenv("FINGERSNAKE_WINDOWED", "true")
	t.Setenv("FINGERSNAKE_SEED", "12345")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CameraDevice != 2 || cfg.TimeLimit != 90 || !cfg.Windowed || cfg.Seed != 12345 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsZeroTimeLimit(t *testing.T) {
	t.Setenv("FINGERSNAKE_TIME_LIMIT", "0")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimeLimit != 60 {
		t.Fatalf("time limit = %d, want fallback 60", cfg.TimeLimit)
	}
}
