package npc

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBehaviorFor(t *testing.T) {
	tests := []struct {
		typ        Type
		aggro      float64
		interval   time.Duration
		stationary bool
	}{
		{Friendly, 0, 5 * time.Second, false},
		{Hostile, 15, 3 * time.Second, false},
		{Neutral, 0, 6 * time.Second, false},
		{Merchant, 0, 0, true},
		{QuestGiver, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			b := BehaviorFor(tt.typ)
			if b.AggroRange != tt.aggro || b.WanderInterval != tt.interval {
				t.Fatalf("unexpected behavior: %+v", b)
			}
			if (b.WanderInterval == 0) != tt.stationary {
				t.Fatalf("stationary mismatch: %+v", b)
			}
		})
	}
}

func TestBehaviorForReturnsCopy(t *testing.T) {
	b := BehaviorFor(Hostile)
	b.AggroRange = 99
	if BehaviorFor(Hostile).AggroRange != 15 {
		t.Fatalf("defaults were mutated")
	}
}

func TestColorFor(t *testing.T) {
	tests := map[Type]string{
		Friendly:   "#8B6914",
		Hostile:    "#8B0000",
		Neutral:    "#696969",
		Merchant:   "#DAA520",
		QuestGiver: "#4169E1",
	}
	for typ, want := range tests {
		c, ok := ColorFor(typ)
		if !ok || c.String() != want {
			t.Fatalf("%s color = %s, want %s", typ, c.String(), want)
		}
	}
}

func TestExamples(t *testing.T) {
	examples := Examples()
	if len(examples) != 4 {
		t.Fatalf("expected 4 examples, got %d", len(examples))
	}

	raider := examples[2]
	if raider.ID != "marsh_raider" || raider.Type != Hostile || raider.Faction != MarshRaiders {
		t.Fatalf("unexpected raider: %+v", raider)
	}
	if raider.Position != (mgl64.Vec3{40, 1, 30}) || raider.SpeedMultiplier != 1.2 {
		t.Fatalf("unexpected raider stats: %+v", raider)
	}

	examples[0].Dialogue[0] = "changed"
	if Examples()[0].Dialogue[0] == "changed" {
		t.Fatalf("examples share dialogue with the table")
	}
}
