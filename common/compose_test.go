package common

import "testing"

type sample struct {
	A float64
	B string
}

type samplePatch struct {
	A *float64
	B *string
}

func (p *samplePatch) ApplyTo(dst *sample) {
	if p == nil {
		return
	}
	Override(&dst.A, p.A)
	Override(&dst.B, p.B)
}

func TestComposeLastWriterWins(t *testing.T) {
	defaults := sample{A: 1, B: "base"}
	got := Compose[sample](defaults,
		&samplePatch{A: Ptr(2.0)},
		&samplePatch{B: Ptr("form")},
		(*samplePatch)(nil),
		&samplePatch{A: Ptr(3.0)},
	)
	if got.A != 3 || got.B != "form" {
		t.Fatalf("unexpected composition: %+v", got)
	}
	if defaults.A != 1 || defaults.B != "base" {
		t.Fatalf("defaults mutated: %+v", defaults)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		factor *float64
		want   float64
	}{
		{name: "multiply", base: 2, factor: Ptr(0.7), want: 1.4},
		{name: "replace zero base", base: 0, factor: Ptr(0.7), want: 0.7},
		{name: "absent factor", base: 2, factor: nil, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.base
			Scale(&v, tt.factor)
			if diff := v - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Scale(%v) = %v, want %v", tt.base, v, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.234, 2, 1.23},
		{1.235001, 2, 1.24},
		{72.5, 0, 73},
		{-0.5, 0, 0},
		{-20.6, 0, -21},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Fatalf("Lerp = %v", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
}
