package lod

import "testing"

func mustPreset(t *testing.T, name PresetName) Preset {
	t.Helper()
	p, ok := LookupPreset(name)
	if !ok {
		t.Fatalf("missing preset %s", name)
	}
	return p
}

func TestPresetsLoaded(t *testing.T) {
	if got := len(PresetNames()); got != 5 {
		t.Fatalf("expected 5 presets, got %d", got)
	}
	for _, name := range PresetNames() {
		p := mustPreset(t, name)
		if p.Name != name {
			t.Fatalf("preset %s has name %s", name, p.Name)
		}
		d := p.Distances
		if !(d.High < d.Medium && d.Medium < d.Low && d.Low < d.Impostor && d.Impostor < d.Cull) {
			t.Fatalf("preset %s distances not increasing: %+v", name, d)
		}
	}
}

func TestConfigFromPreset(t *testing.T) {
	cfg := ConfigFromPreset(mustPreset(t, Desktop))
	if len(cfg.Levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(cfg.Levels))
	}
	for i, lvl := range cfg.Levels[:4] {
		if !lvl.Visible {
			t.Fatalf("level %d should be visible", i)
		}
	}
	cull := cfg.Levels[4]
	if cull.Visible || cull.Distance != 500 {
		t.Fatalf("unexpected cull level: %+v", cull)
	}
	if cfg.FadeMode != FadeCrossfade || cfg.Hysteresis != 0.1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestVegetationConfigFromPreset(t *testing.T) {
	veg := VegetationConfigFromPreset(mustPreset(t, Quality))
	if veg.HighDetailDistance != 50 || veg.CullDistance != 1000 || veg.TransitionWidth != 10 {
		t.Fatalf("unexpected vegetation config: %+v", veg)
	}
}

func TestInterpolatePresets(t *testing.T) {
	a := mustPreset(t, Performance)
	b := mustPreset(t, Quality)

	tests := []struct {
		name      string
		t         float64
		wantName  PresetName
		wantFade  FadeMode
		wantHigh  float64
		wantShade int
		wantViews int
	}{
		{"start", 0, Performance, FadeInstant, 10, 1, 4},
		{"quarter", 0.25, Performance, FadeInstant, 20, 1, 7},
		{"half", 0.5, Quality, FadeCrossfade, 30, 2, 10},
		{"end", 1, Quality, FadeCrossfade, 50, 2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolatePresets(a, b, tt.t)
			if got.Name != tt.wantName || got.FadeMode != tt.wantFade {
				t.Fatalf("name/fade = %s/%s, want %s/%s", got.Name, got.FadeMode, tt.wantName, tt.wantFade)
			}
			if got.Distances.High != tt.wantHigh {
				t.Fatalf("high = %v, want %v", got.Distances.High, tt.wantHigh)
			}
			if got.ShadowLODLevel != tt.wantShade || got.ImpostorViews != tt.wantViews {
				t.Fatalf("shadow/views = %d/%d, want %d/%d", got.ShadowLODLevel, got.ImpostorViews, tt.wantShade, tt.wantViews)
			}
		})
	}
}

func TestAdaptiveStepsDown(t *testing.T) {
	a := NewAdaptive(Desktop, 60)
	want := []PresetName{Desktop, Desktop, Desktop, Desktop, Performance, Mobile, Mobile}
	for i, w := range want {
		if got := a.Adapt(30).Name; got != w {
			t.Fatalf("frame %d: preset = %s, want %s (smoothed %v)", i, got, w, a.SmoothedFPS())
		}
	}
}

func TestAdaptiveStepsUp(t *testing.T) {
	a := NewAdaptive(Desktop, 60)
	want := []PresetName{Desktop, Quality, Ultra, Ultra}
	for i, w := range want {
		if got := a.Adapt(100).Name; got != w {
			t.Fatalf("frame %d: preset = %s, want %s", i, got, w)
		}
	}
}

func TestAdaptiveDefaults(t *testing.T) {
	a := NewAdaptive("unknown", 0)
	if a.Preset().Name != Desktop || a.SmoothedFPS() != 60 {
		t.Fatalf("unexpected defaults: %s %v", a.Preset().Name, a.SmoothedFPS())
	}
}

func TestDetectPreset(t *testing.T) {
	tests := []struct {
		name string
		info *DeviceInfo
		want PresetName
	}{
		{"headless", nil, Desktop},
		{"mobile", &DeviceInfo{UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", HasGPU: true}, Mobile},
		{"no gpu", &DeviceInfo{}, Performance},
		{"rtx", &DeviceInfo{HasGPU: true, Renderer: "NVIDIA GeForce RTX 4080"}, Ultra},
		{"gtx", &DeviceInfo{HasGPU: true, Renderer: "NVIDIA GeForce GTX 1060"}, Quality},
		{"intel", &DeviceInfo{HasGPU: true, Renderer: "Intel(R) UHD Graphics 620"}, Performance},
		{"memory 8", &DeviceInfo{HasGPU: true, MemoryGB: 8}, Quality},
		{"memory 4", &DeviceInfo{HasGPU: true, MemoryGB: 4}, Desktop},
		{"memory 2", &DeviceInfo{HasGPU: true, MemoryGB: 2}, Performance},
		{"memory 1", &DeviceInfo{HasGPU: true, MemoryGB: 1}, Mobile},
		{"unknown", &DeviceInfo{HasGPU: true, Renderer: "Apple M2"}, Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPreset(tt.info); got != tt.want {
				t.Fatalf("DetectPreset() = %s, want %s", got, tt.want)
			}
		})
	}
}
