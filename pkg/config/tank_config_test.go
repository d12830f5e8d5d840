package config

import (
	"os"
	"strings"
	"testing"
)

func TestParseTankConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TankConfig)
	}{
		{
			name: "full config",
			yamlContent: `
scene:
  width: 400
  height: 1000
  backgroundColor: "#ffffff"
touch:
  thresholdRatio: 0.8
wander:
  range: 100
  interval: 1.0
  moveDuration: 1.0
food:
  fallSpeed: 100
marker:
  fadeDuration: 0.5
`,
			validate: func(t *testing.T, cfg *TankConfig) {
				if cfg.Scene.Width != 400 || cfg.Scene.Height != 1000 {
					t.Errorf("expected 400x1000, got %dx%d", cfg.Scene.Width, cfg.Scene.Height)
				}
				if cfg.TouchThreshold() != 800 {
					t.Errorf("expected touch threshold 800, got %f", cfg.TouchThreshold())
				}
				if cfg.Marker.FadeDuration != 0.5 {
					t.Errorf("expected fade 0.5, got %f", cfg.Marker.FadeDuration)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
scene:
  width: 320
`,
			validate: func(t *testing.T, cfg *TankConfig) {
				if cfg.Scene.Width != 320 {
					t.Errorf("expected width 320, got %d", cfg.Scene.Width)
				}
				if cfg.Scene.Height != 1000 {
					t.Errorf("expected default height 1000, got %d", cfg.Scene.Height)
				}
				if cfg.Sprites.Fish.Width != 60 {
					t.Errorf("expected default fish width 60, got %d", cfg.Sprites.Fish.Width)
				}
			},
		},
		{
			name: "negative wander range",
			yamlContent: `
wander:
  range: -5
`,
			wantErr:     true,
			errContains: "wander range",
		},
		{
			name: "threshold out of range",
			yamlContent: `
touch:
  thresholdRatio: 1.5
`,
			wantErr:     true,
			errContains: "touch threshold",
		},
		{
			name: "bad background color",
			yamlContent: `
scene:
  backgroundColor: "white"
`,
			wantErr:     true,
			errContains: "background color",
		},
		{
			name:        "malformed yaml",
			yamlContent: "scene: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "zero sprite size",
			yamlContent: `
sprites:
  food:
    width: 0
    height: 16
`,
			wantErr:     true,
			errContains: "sprite food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTankConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDefaultTankConfigIsValid(t *testing.T) {
	if err := DefaultTankConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

// TestEmbeddedTankConfigMatchesDefaults 确保 data/tank.yaml 与 DefaultTankConfig 保持一致
func TestEmbeddedTankConfigMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../" + TankConfigPath)
	if err != nil {
		t.Skipf("tank.yaml not available: %v", err)
	}

	cfg, err := ParseTankConfig(data)
	if err != nil {
		t.Fatalf("tank.yaml should parse: %v", err)
	}

	if *cfg != *DefaultTankConfig() {
		t.Errorf("tank.yaml differs from defaults:\n got %+v\nwant %+v", *cfg, *DefaultTankConfig())
	}
}

func TestBackground(t *testing.T) {
	c, err := SceneConfig{BackgroundColor: "#ff8000"}.Background()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0xff || c.G != 0x80 || c.B != 0x00 || c.A != 0xff {
		t.Errorf("unexpected color %+v", c)
	}
}

func TestTankCenter(t *testing.T) {
	x, y := DefaultTankConfig().TankCenter()
	if x != 200 || y != 500 {
		t.Errorf("expected (200, 500), got (%f, %f)", x, y)
	}
}
