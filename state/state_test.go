package state

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/weather"
)

var fixedClock = ClockFunc(func() time.Time {
	return time.UnixMilli(1_700_000_000_000)
})

func TestPresetsLoaded(t *testing.T) {
	infos := Presets()
	if len(infos) != 5 {
		t.Fatalf("expected 5 presets, got %d", len(infos))
	}
	if infos[0].Name != RPGPreset || infos[4].Name != CounterPreset {
		t.Fatalf("unexpected order: %v, %v", infos[0].Name, infos[4].Name)
	}

	rpg, _ := LookupPreset(RPGPreset)
	if rpg.MaxUndoSize != 100 || rpg.AutoSave.Interval != 2*time.Minute || rpg.AutoSave.StorageKey != "rpg_autosave" {
		t.Fatalf("unexpected rpg preset: %+v", rpg)
	}

	sandbox, _ := LookupPreset(SandboxPreset)
	if sandbox.AutoSave.MaxSlots != 5 || sandbox.AutoSave.Debounce != 10*time.Second {
		t.Fatalf("unexpected sandbox autosave: %+v", sandbox.AutoSave)
	}
}

func TestAutoSaveConfigs(t *testing.T) {
	tests := []struct {
		name     AutoSaveName
		enabled  bool
		interval time.Duration
	}{
		{AutoSaveFrequent, true, 30 * time.Second},
		{AutoSaveModerate, true, 2 * time.Minute},
		{AutoSaveInfrequent, true, 5 * time.Minute},
		{AutoSaveDisabled, false, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			cfg, ok := AutoSave(tt.name)
			if !ok || cfg.Enabled != tt.enabled || cfg.Interval != tt.interval {
				t.Fatalf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestNewRPGStateDoesNotShareDefaults(t *testing.T) {
	a := NewRPGState(nil)
	a.VisitedLocations[0] = "elsewhere"
	a.GameFlags["seen"] = true

	b := NewRPGState(nil)
	if b.VisitedLocations[0] != "starting_village" || len(b.GameFlags) != 0 {
		t.Fatalf("defaults were mutated: %+v", b)
	}
}

func TestNewRPGStateOverrides(t *testing.T) {
	s := NewRPGState(&RPGPatch{Gold: common.Ptr(50), CurrentLocation: common.Ptr("castle")})
	if s.Gold != 50 || s.CurrentLocation != "castle" || s.Player.Level != 1 {
		t.Fatalf("unexpected state: %+v", s)
	}
}

func TestAddExperience(t *testing.T) {
	tests := []struct {
		name      string
		amount    int
		wantLevel int
		wantExp   int
		wantMaxHP int
	}{
		{"below threshold", 50, 1, 50, 100},
		{"one level", 100, 2, 0, 110},
		{"multiple levels", 350, 3, 50, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := NewRPGState(nil)
			start.Player.Health = 10
			got := AddExperience(start, tt.amount)
			p := got.Player
			if p.Level != tt.wantLevel || p.Experience != tt.wantExp || p.MaxHealth != tt.wantMaxHP {
				t.Fatalf("unexpected player: %+v", p)
			}
			if tt.wantLevel > 1 && (p.Health != p.MaxHealth || p.Mana != p.MaxMana) {
				t.Fatalf("level-up should refill: %+v", p)
			}
			if start.Player.Level != 1 || start.Player.Experience != 0 {
				t.Fatalf("input mutated: %+v", start.Player)
			}
		})
	}
}

func TestAddInventoryItem(t *testing.T) {
	potion := InventoryItem{ID: "potion", Name: "Potion", Quantity: 2, Type: ItemConsumable}
	sword := InventoryItem{ID: "sword", Name: "Sword", Quantity: 1, Type: ItemWeapon}

	s := NewRPGState(nil)
	s = AddInventoryItem(s, potion)
	s = AddInventoryItem(s, potion)
	s = AddInventoryItem(s, sword)
	s = AddInventoryItem(s, sword)

	if len(s.Inventory) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(s.Inventory))
	}
	if s.Inventory[0].Quantity != 4 {
		t.Fatalf("potions should stack, got %d", s.Inventory[0].Quantity)
	}
}

func TestCompleteQuest(t *testing.T) {
	s := NewRPGState(&RPGPatch{Quests: []Quest{
		{ID: "rats", Status: QuestActive, Rewards: &QuestRewards{Experience: 150, Gold: 20}},
	}})

	got := CompleteQuest(s, "rats")
	if got.Quests[0].Status != QuestCompleted {
		t.Fatalf("quest not completed: %+v", got.Quests[0])
	}
	if got.Gold != 20 || got.Player.Level != 2 || got.Player.Experience != 50 {
		t.Fatalf("rewards not paid: gold %d player %+v", got.Gold, got.Player)
	}
	if s.Quests[0].Status != QuestActive {
		t.Fatalf("input mutated")
	}

	if same := CompleteQuest(s, "missing"); !reflect.DeepEqual(same, s) {
		t.Fatalf("unknown quest should leave state unchanged")
	}
}

func TestUnlockLevel(t *testing.T) {
	s := NewPuzzleState(nil)
	s = UnlockLevel(s, 5)
	s = UnlockLevel(s, 3)
	s = UnlockLevel(s, 3)
	if !slices.Equal(s.UnlockedLevels, []int{1, 3, 5}) {
		t.Fatalf("unexpected unlocked levels: %v", s.UnlockedLevels)
	}
}

func TestCollectCoin(t *testing.T) {
	tests := []struct {
		name      string
		coins     int
		lives     int
		value     int
		wantCoins int
		wantLives int
	}{
		{"single coin", 0, 3, 1, 1, 3},
		{"wraps and grants life", 99, 3, 1, 0, 4},
		{"capped at max lives", 95, 5, 10, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPlatformerState(&PlatformerPatch{Coins: common.Ptr(tt.coins), Lives: common.Ptr(tt.lives)})
			got := CollectCoin(s, tt.value)
			if got.Coins != tt.wantCoins || got.Lives != tt.wantLives || got.Score != tt.value*10 {
				t.Fatalf("unexpected state: %+v", got)
			}
		})
	}
}

func TestLoseLife(t *testing.T) {
	s := NewPlatformerState(&PlatformerPatch{Lives: common.Ptr(1)})
	s = LoseLife(s)
	s = LoseLife(s)
	if s.Lives != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives)
	}
}

func TestNewSandboxStateSeed(t *testing.T) {
	s := NewSandboxState(fixedClock, nil)
	if s.WorldSeed != 1_700_000_000_000 {
		t.Fatalf("seed = %d", s.WorldSeed)
	}
	if s.PlayerPosition != (mgl64.Vec3{0, 64, 0}) || s.Weather != weather.TypeClear {
		t.Fatalf("unexpected defaults: %+v", s)
	}

	seeded := NewSandboxState(fixedClock, &SandboxPatch{WorldSeed: common.Ptr[int64](42)})
	if seeded.WorldSeed != 42 {
		t.Fatalf("explicit seed should win, got %d", seeded.WorldSeed)
	}

	if !reflect.DeepEqual(NewSandboxState(fixedClock, nil), NewSandboxState(fixedClock, nil)) {
		t.Fatalf("same clock should give identical states")
	}
}

func TestPlaceAndRemoveBlock(t *testing.T) {
	pos := mgl64.Vec3{1, 2, 3}
	s := NewSandboxState(nil, nil)
	s = PlaceBlock(s, Block{ID: "a", Type: "dirt", Position: pos})
	s = PlaceBlock(s, Block{ID: "b", Type: "stone", Position: pos})
	s = PlaceBlock(s, Block{ID: "c", Type: "sand", Position: mgl64.Vec3{0, 0, 0}})

	if len(s.Blocks) != 2 || s.Blocks[0].Type != "stone" {
		t.Fatalf("unexpected blocks: %+v", s.Blocks)
	}

	removed := RemoveBlock(s, pos)
	if len(removed.Blocks) != 1 || removed.Blocks[0].ID != "c" {
		t.Fatalf("unexpected blocks after remove: %+v", removed.Blocks)
	}
	if len(s.Blocks) != 2 {
		t.Fatalf("input mutated")
	}
}

func TestNewCounterPreset(t *testing.T) {
	p := NewCounterPreset(fixedClock, nil)
	if p.Name != CounterPreset || p.InitialState.LastUpdated != 1_700_000_000_000 || p.InitialState.Count != 0 {
		t.Fatalf("unexpected counter preset: %+v", p)
	}
}
