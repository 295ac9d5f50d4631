package creature

import (
	"strings"
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func TestPrompt(t *testing.T) {
	arctic, ok := LookupTheme("arctic")
	if !ok {
		t.Fatalf("arctic theme missing")
	}
	brown, ok := LookupTheme("brown")
	if !ok {
		t.Fatalf("brown theme missing")
	}

	tests := []struct {
		name    string
		params  Quadruped
		theme   *Theme
		species string
		want    string
	}{
		{
			name:    "baby otter arctic",
			params:  CreateQuadruped(Otter, &QuadrupedPatch{Age: agePtr(Baby)}),
			theme:   &arctic,
			species: "otter",
			want:    "baby, otter, tiny, #E3F2FD colored, gradient pattern, with #90CAF9 markings, big eyes, webbed feet, #00BCD4 eyes",
		},
		{
			name:    "old heavy wolf",
			params:  CreateQuadruped(Wolf, &QuadrupedPatch{Age: agePtr(Old), Build: buildPtr(Heavy), Wear: common.Ptr(0.7)}),
			theme:   &brown,
			species: "wolf",
			want:    "old, heavy, wolf, #5D4037 colored, prominent whiskers, battle-scarred, #4A3728 eyes",
		},
		{
			name:    "no theme no species",
			params:  CreateQuadruped(Moose, nil),
			theme:   nil,
			species: "",
			want:    "creature, large, horned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prompt(tt.params, tt.theme, tt.species); got != tt.want {
				t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestPromptSizeBands(t *testing.T) {
	tests := []struct {
		size float64
		band string
	}{
		{0.3, "tiny"},
		{0.6, "small"},
		{1.0, ""},
		{1.7, "large"},
		// The massive band is shadowed by large.
		{2.5, "large"},
	}
	for _, tt := range tests {
		p := CreateCustomQuadruped(&QuadrupedPatch{Size: common.Ptr(tt.size)})
		got := Prompt(p, nil, "x")
		parts := strings.Split(got, ", ")
		band := ""
		if len(parts) > 1 {
			band = parts[1]
		}
		if band != tt.band {
			t.Errorf("size %v: band %q, want %q (prompt %q)", tt.size, band, tt.band, got)
		}
	}
}
