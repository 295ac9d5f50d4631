package collectible

import (
	"reflect"
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func TestCreateCoin(t *testing.T) {
	coin := Create(Coin, "", nil)
	if coin.MaterialType != MaterialTypeMetal || coin.Metalness != 0.9 {
		t.Fatalf("unexpected coin material: %+v", coin)
	}
	if !coin.HasBorder || !coin.HasEmblem || coin.EmblemType != EmblemTypeStar {
		t.Fatalf("unexpected coin decoration: %+v", coin)
	}
	if coin.Thickness != 0.15 || coin.Roughness != 0.2 {
		t.Fatalf("unexpected coin surface: %+v", coin)
	}
}

func TestCreateForms(t *testing.T) {
	forms := Forms()
	if len(forms) != 17 {
		t.Fatalf("expected 17 forms, got %d", len(forms))
	}
	for _, form := range forms {
		t.Run(string(form), func(t *testing.T) {
			c := Create(form, "", nil)
			if c.Size <= 0 {
				t.Fatalf("size should be positive, got %v", c.Size)
			}
		})
	}
}

func TestRarity(t *testing.T) {
	tests := []struct {
		rarity   Rarity
		glow     float64
		sparkles bool
		trail    bool
	}{
		{Common, 0, false, false},
		{Uncommon, 0.1, false, false},
		{Rare, 0.3, true, false},
		{Epic, 0.5, true, true},
		{Legendary, 0.8, true, true},
	}
	prev := -1.0
	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			c := Create(Coin, tt.rarity, nil)
			if c.Glow != tt.glow || c.Sparkles != tt.sparkles || c.HasTrail != tt.trail {
				t.Fatalf("unexpected rarity result: %+v", c)
			}
			if c.Glow <= prev {
				t.Fatalf("glow should increase with rarity")
			}
			prev = c.Glow
		})
	}

	if got := Create(Coin, Legendary, nil).RotationSpeed; got != 1.5 {
		t.Fatalf("legendary rotation speed = %v, want 1.5", got)
	}
}

func TestCustomizationsWinOverRarity(t *testing.T) {
	c := Create(Gem, Legendary, &Patch{Glow: common.Ptr(0.05), HasTrail: common.Ptr(false)})
	if c.Glow != 0.05 || c.HasTrail {
		t.Fatalf("customizations should win, got %+v", c)
	}
	if !c.Sparkles {
		t.Fatalf("rarity sparkles should survive")
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	if !reflect.DeepEqual(Create(Potion, Rare, nil), Create(Potion, Rare, nil)) {
		t.Fatalf("expected identical results")
	}
}
