package creature

import (
	"reflect"
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func TestCreateMorphology(t *testing.T) {
	defaults := MorphologyDefaults()

	fox := CreateMorphology(Fox, nil)
	if fox.Ears.Size != 1.4 || fox.Ears.Tufts != 0.3 {
		t.Fatalf("unexpected fox ears: %+v", fox.Ears)
	}
	if fox.Ears.Angle != defaults.Ears.Angle {
		t.Fatalf("unlisted ear fields should keep defaults, got angle %v", fox.Ears.Angle)
	}
	if fox.Eyes != defaults.Eyes {
		t.Fatalf("fox does not override eyes")
	}

	bear := CreateMorphology(Bear, &MorphologyPatch{Whiskers: &WhiskersPatch{Count: common.Ptr(2)}})
	if bear.Whiskers.Present {
		t.Fatalf("bear whiskers should be absent")
	}
	if bear.Whiskers.Count != 2 {
		t.Fatalf("override count should apply after species, got %d", bear.Whiskers.Count)
	}

	horse := CreateMorphology(Horse, nil)
	if horse.Paws.ToeCount != 1 || horse.Paws.ClawLength != 0 || horse.Tail.FurLength != 2 {
		t.Fatalf("unexpected horse morphology: %+v %+v", horse.Paws, horse.Tail)
	}

	if got := CreateMorphology(Mouse, nil); !reflect.DeepEqual(got, defaults) {
		t.Fatalf("species without a preset should yield defaults")
	}
	if HasSpeciesMorphology(Mouse) || !HasSpeciesMorphology(Otter) {
		t.Fatalf("unexpected species preset membership")
	}
}

func TestCreateMorphologyDoesNotShareState(t *testing.T) {
	a := CreateMorphology(Cat, nil)
	a.Whiskers.Count = 99
	b := CreateMorphology(Cat, nil)
	if b.Whiskers.Count != 6 {
		t.Fatalf("expected cat whisker count 6, got %d", b.Whiskers.Count)
	}
}

func TestMorphologyFromQuadruped(t *testing.T) {
	q := CreateQuadruped(Otter, nil)
	m := MorphologyFromQuadruped(q)

	if m.Ears.TipRoundness != q.EarRoundness || m.Paws.Webbing != q.Webbing {
		t.Fatalf("quadruped values not mapped: %+v", m)
	}
	if !m.Whiskers.Present || m.Whiskers.Length != 0.7 {
		t.Fatalf("otter should have whiskers, got %+v", m.Whiskers)
	}
	if m.Snout.NoseColor.String() != "#1A1A1A" {
		t.Fatalf("unmapped fields should keep defaults, got %s", m.Snout.NoseColor)
	}

	horse := MorphologyFromQuadruped(CreateQuadruped(Horse, nil))
	if horse.Whiskers.Present {
		t.Fatalf("zero whisker length means no whiskers")
	}
}
