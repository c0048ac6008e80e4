package config

import "testing"

func TestLoadEnv(t *testing.T) {
	saved, savedDebug, savedBloom := *C, Debug, Bloom
	t.Cleanup(func() {
		*C, Debug, Bloom = saved, savedDebug, savedBloom
	})

	t.Setenv("SCHEMATIC_WIDTH", "800")
	t.Setenv("SCHEMATIC_TITLE", "panel")
	t.Setenv("SCHEMATIC_WATCH", "true")
	t.Setenv("SCHEMATIC_NO_BLOOM", "1")

	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if C.Width != 800 {
		t.Fatalf("expected width 800, got %d", C.Width)
	}
	if C.Height != saved.Height {
		t.Fatalf("height should keep its default, got %d", C.Height)
	}
	if C.Title != "panel" {
		t.Fatalf("expected title panel, got %q", C.Title)
	}
	if !Debug.Watch {
		t.Fatal("expected watch enabled")
	}
	if Bloom.Enabled {
		t.Fatal("expected bloom disabled")
	}
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	t.Setenv("SCHEMATIC_WIDTH", "wide")
	if err := LoadEnv(); err == nil {
		t.Fatal("expected an error for a non-numeric width")
	}
}

func TestCameraDefaults(t *testing.T) {
	if Camera.Scale != 0.1 {
		t.Fatalf("expected camera scale 0.1, got %v", Camera.Scale)
	}
	if Camera.Position.Z != -2 {
		t.Fatalf("expected camera z -2, got %v", Camera.Position.Z)
	}
}
