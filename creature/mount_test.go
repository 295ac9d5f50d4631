package creature

import (
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func saddlePtr(s SaddleType) *SaddleType { return &s }

func TestCreateMount(t *testing.T) {
	tests := []struct {
		name       string
		custom     *MountPatch
		wantSaddle bool
		wantReins  bool
	}{
		{name: "no customizations", custom: nil},
		{
			name:       "saddle type fits gear",
			custom:     &MountPatch{SaddleType: saddlePtr(SaddleBasic)},
			wantSaddle: true,
			wantReins:  true,
		},
		{
			name:   "explicit saddled false is respected",
			custom: &MountPatch{SaddleType: saddlePtr(SaddleWar), Saddled: common.Ptr(false)},
		},
		{
			name:       "explicit saddled true keeps reins off",
			custom:     &MountPatch{SaddleType: saddlePtr(SaddleFancy), Saddled: common.Ptr(true)},
			wantSaddle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreateMount(Horse, tt.custom)
			if m.Saddled != tt.wantSaddle || m.HasReins != tt.wantReins {
				t.Fatalf("saddled=%v reins=%v, want %v/%v", m.Saddled, m.HasReins, tt.wantSaddle, tt.wantReins)
			}
			if m.Size != 1.8 {
				t.Fatalf("expected horse size 1.8, got %v", m.Size)
			}
		})
	}
}

func TestCreateMountRoutesCreatureKeys(t *testing.T) {
	m := CreateMount(Horse, &MountPatch{
		QuadrupedPatch:   QuadrupedPatch{Age: agePtr(Young)},
		CarryingCapacity: common.Ptr(2.5),
	})
	if !approx(m.Size, 1.8*0.7) {
		t.Fatalf("expected young horse size %v, got %v", 1.8*0.7, m.Size)
	}
	if m.CarryingCapacity != 2.5 {
		t.Fatalf("expected carrying capacity 2.5, got %v", m.CarryingCapacity)
	}
	if m.SaddleType != SaddleNone || m.Saddled {
		t.Fatalf("expected unsaddled mount, got %+v", m)
	}
}

func TestMountPrompt(t *testing.T) {
	tests := []struct {
		name    string
		custom  *MountPatch
		species string
		want    string
	}{
		{
			name:    "bare",
			custom:  nil,
			species: "",
			want:    "creature",
		},
		{
			name: "war horse",
			custom: &MountPatch{
				SaddleType:         saddlePtr(SaddleWar),
				Barding:            common.Ptr(0.8),
				HasPanniers:        common.Ptr(true),
				MountOrnamentation: common.Ptr(0.6),
			},
			species: "horse",
			want:    "horse, equipped with a war saddle, and bridle, with pack bags, in heavy plate barding, decorated with ceremonial silks and tassels",
		},
		{
			name: "old pony in leather",
			custom: &MountPatch{
				QuadrupedPatch: QuadrupedPatch{Age: agePtr(Old)},
				Barding:        common.Ptr(0.5),
			},
			species: "pony",
			want:    "old, pony, in leather barding",
		},
		{
			name:    "light armor",
			custom:  &MountPatch{Barding: common.Ptr(0.1)},
			species: "horse",
			want:    "horse, with light armor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MountPrompt(CreateMount(Horse, tt.custom), tt.species)
			if got != tt.want {
				t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
