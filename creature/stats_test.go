package creature

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

func TestSuggestGameplayStats(t *testing.T) {
	tests := []struct {
		name   string
		params Quadruped
		want   GameplayStats
	}{
		{
			name:   "defaults",
			params: CreateCustomQuadruped(nil),
			want:   GameplayStats{Speed: 0.8, Health: 80, Agility: 0.5, Strength: 0.7},
		},
		{
			name:   "baby otter",
			params: CreateQuadruped(Otter, &QuadrupedPatch{Age: agePtr(Baby)}),
			want:   GameplayStats{Speed: 0.52, Health: 22, Agility: 0.96, Strength: 0.64},
		},
		{
			name:   "horse",
			params: CreateQuadruped(Horse, nil),
			want:   GameplayStats{Speed: 0.97, Health: 115, Agility: 0.45, Strength: 0.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestGameplayStats(tt.params)
			if !approx(got.Speed, tt.want.Speed) || !approx(got.Health, tt.want.Health) ||
				!approx(got.Agility, tt.want.Agility) || !approx(got.Strength, tt.want.Strength) {
				t.Fatalf("stats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultStatScriptMatchesBuiltin(t *testing.T) {
	script, err := DefaultStatScript()
	if err != nil {
		t.Fatalf("load default script: %v", err)
	}

	ages := []Age{Baby, Young, Adult, Old}
	builds := []Build{Thin, Lean, Average, Stocky, Heavy}
	for _, form := range QuadrupedForms() {
		for _, age := range ages {
			for _, build := range builds {
				p := CreateQuadruped(form, &QuadrupedPatch{Age: agePtr(age), Build: buildPtr(build)})
				got, err := script.Eval(context.Background(), p)
				if err != nil {
					t.Fatalf("%s/%s/%s: eval: %v", form, age, build, err)
				}
				want := SuggestGameplayStats(p)
				if !approx(got.Speed, want.Speed) || !approx(got.Health, want.Health) ||
					!approx(got.Agility, want.Agility) || !approx(got.Strength, want.Strength) {
					t.Fatalf("%s/%s/%s: script %+v, builtin %+v", form, age, build, got, want)
				}
			}
		}
	}
}

func TestCompileStatScript(t *testing.T) {
	script, err := CompileStatScript([]byte(`
speed := __params.leg_length * 2
health := 100
agility := 1
strength := __params.paw_size + 0.1
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := script.Eval(context.Background(), CreateQuadruped(Horse, nil))
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if got.Speed != 3 || got.Health != 100 || got.Agility != 1 || !approx(got.Strength, 0.9) {
		t.Fatalf("unexpected stats %+v", got)
	}

	_, err = CompileStatScript([]byte(`speed := 1`))
	if !errors.Is(err, ErrMissingStat) {
		t.Fatalf("expected ErrMissingStat, got %v", err)
	}

	if _, err := CompileStatScript([]byte(`speed := (`)); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestLoadStatScriptFromOverlay(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	src := "speed := 2\nhealth := __params.size * 10\nagility := 0.5\nstrength := 0.25\n"
	if err := os.WriteFile(filepath.Join(dir, "scripts", "flat.tengo"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	script, err := LoadStatScript(prefabs.Overlay(dir), "flat")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := script.Eval(context.Background(), CreateCustomQuadruped(&QuadrupedPatch{Size: common.Ptr(2.5)}))
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	want := GameplayStats{Speed: 2, Health: 25, Agility: 0.5, Strength: 0.25}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}

	if _, err := LoadStatScript(prefabs.Overlay(dir), "creature_stats"); err != nil {
		t.Fatalf("embedded script through the overlay: %v", err)
	}
}

func TestCompileStatScriptRejectsRuntimeErrors(t *testing.T) {
	_, err := CompileStatScript([]byte(`
speed := __params.missing_field + 1
health := 1
agility := 1
strength := 1
`))
	if err == nil {
		t.Fatalf("expected the check run to fail")
	}
}
