package vehicle

import (
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func TestCreateForms(t *testing.T) {
	if got := len(Forms()); got != 8 {
		t.Fatalf("expected 8 forms, got %d", got)
	}

	wagon := Create(Wagon, nil)
	if wagon.Type != TypeWagon || wagon.WheelCount != 4 || !wagon.HasCanopy || wagon.CargoCapacity != 3 {
		t.Fatalf("unexpected wagon: %+v", wagon)
	}

	sled := Create(Sled, nil)
	if sled.Propulsion != PropulsionRunner || !sled.HasRunners {
		t.Fatalf("unexpected sled: %+v", sled)
	}
}

func TestConditionWear(t *testing.T) {
	tests := []struct {
		name   string
		custom *Patch
		want   float64
	}{
		{"new", nil, 0},
		{"used", &Patch{Condition: common.Ptr(ConditionUsed)}, 0},
		{"dilapidated", &Patch{Condition: common.Ptr(ConditionDilapidated)}, 0.6},
		{"ruined", &Patch{Condition: common.Ptr(ConditionRuined)}, 0.9},
		{"explicit wear wins", &Patch{Condition: common.Ptr(ConditionRuined), Wear: common.Ptr(0.2)}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Create(Cart, tt.custom).Wear; got != tt.want {
				t.Fatalf("wear = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		v        Vehicle
		material string
		want     string
	}{
		{"new cart", Create(Cart, nil), "", "cart, made of wood, with 2 large wheels"},
		{"wagon", Create(Wagon, nil), "oak", "wagon, made of oak, with a canopy cover, with 4 large wheels"},
		{"sailboat", Create(Sailboat, nil), "", "vessel, made of wood, with 1 sails"},
		{"canoe skips wheels", Create(Canoe, nil), "", "vessel, made of wood"},
		{
			"ruined raft",
			Create(Raft, &Patch{Condition: common.Ptr(ConditionRuined)}),
			"",
			"ruined, raft, made of wood, weathered and worn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prompt(tt.v, tt.material); got != tt.want {
				t.Fatalf("Prompt() = %q, want %q", got, tt.want)
			}
		})
	}
}
