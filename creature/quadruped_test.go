package creature

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/milk9111/gamepresets/common"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func agePtr(a Age) *Age       { return &a }
func buildPtr(b Build) *Build { return &b }

func TestQuadrupedFormsLoaded(t *testing.T) {
	forms := QuadrupedForms()
	if len(forms) != 17 {
		t.Fatalf("expected 17 forms, got %d: %v", len(forms), forms)
	}
	if !slices.IsSorted(forms) {
		t.Fatalf("forms should be sorted: %v", forms)
	}
	for _, form := range forms {
		t.Run(string(form), func(t *testing.T) {
			q := CreateQuadruped(form, nil)
			if q.Size <= 0 {
				t.Fatalf("size should be positive, got %v", q.Size)
			}
			if q.Age != Adult || q.Build != Average {
				t.Fatalf("expected adult/average, got %s/%s", q.Age, q.Build)
			}
		})
	}
}

func TestCreateQuadrupedIsIdempotent(t *testing.T) {
	a := CreateQuadruped(Otter, nil)
	b := CreateQuadruped(Otter, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical records:\n%+v\n%+v", a, b)
	}
}

func TestCreateQuadrupedFormValues(t *testing.T) {
	horse := CreateQuadruped(Horse, nil)
	if horse.Size != 1.8 || horse.LegLength != 1.5 || horse.Mane != 1 {
		t.Fatalf("unexpected horse proportions: %+v", horse)
	}
	if horse.ClawLength != 0 {
		t.Fatalf("horse form sets claw length 0 for hooves, got %v", horse.ClawLength)
	}
	if horse.EarRoundness != 0.2 {
		t.Fatalf("expected ear roundness 0.2, got %v", horse.EarRoundness)
	}
	if horse.WhiskerLength != 0 {
		t.Fatalf("expected default whisker length, got %v", horse.WhiskerLength)
	}
}

func TestCreateQuadrupedAgeAndBuild(t *testing.T) {
	tests := []struct {
		name   string
		form   Form
		custom *QuadrupedPatch
		check  func(t *testing.T, q Quadruped)
	}{
		{
			name:   "baby otter is smaller than adult otter",
			form:   Otter,
			custom: &QuadrupedPatch{Age: agePtr(Baby)},
			check: func(t *testing.T, q Quadruped) {
				adult := CreateQuadruped(Otter, &QuadrupedPatch{Age: agePtr(Adult)})
				if !(q.Size < adult.Size) {
					t.Fatalf("baby size %v should be below adult size %v", q.Size, adult.Size)
				}
				if !approx(q.Size, 0.4) {
					t.Fatalf("expected 1 * 0.4, got %v", q.Size)
				}
			},
		},
		{
			name:   "baby multiplies leg length",
			form:   Dog,
			custom: &QuadrupedPatch{Age: agePtr(Baby)},
			check: func(t *testing.T, q Quadruped) {
				if !approx(q.LegLength, 1.1*0.7) {
					t.Fatalf("expected %v, got %v", 1.1*0.7, q.LegLength)
				}
			},
		},
		{
			name:   "old leaves unlisted fields alone",
			form:   Cat,
			custom: &QuadrupedPatch{Age: agePtr(Old)},
			check: func(t *testing.T, q Quadruped) {
				if q.LegLength != 0.9 {
					t.Fatalf("expected cat leg length 0.9, got %v", q.LegLength)
				}
				if !approx(q.Wear, 0.2) {
					t.Fatalf("zero wear should be replaced by 0.2, got %v", q.Wear)
				}
			},
		},
		{
			// A zero base takes the modifier value instead of staying zero.
			name:   "zero base is replaced not multiplied",
			form:   Wolf,
			custom: &QuadrupedPatch{Age: agePtr(Baby)},
			check: func(t *testing.T, q Quadruped) {
				if !approx(q.WhiskerLength, 0.2) {
					t.Fatalf("expected whisker length 0.2, got %v", q.WhiskerLength)
				}
			},
		},
		{
			name:   "heavy build compounds form bulk",
			form:   Bear,
			custom: &QuadrupedPatch{Build: buildPtr(Heavy)},
			check: func(t *testing.T, q Quadruped) {
				if !approx(q.BodyBulk, 1.4*1.4) {
					t.Fatalf("expected %v, got %v", 1.4*1.4, q.BodyBulk)
				}
				if !approx(q.LegLength, 0.9*0.9) {
					t.Fatalf("expected %v, got %v", 0.9*0.9, q.LegLength)
				}
				if q.Build != Heavy {
					t.Fatalf("expected build heavy, got %s", q.Build)
				}
			},
		},
		{
			name:   "customizations win over scaled values",
			form:   Otter,
			custom: &QuadrupedPatch{Age: agePtr(Baby), Size: common.Ptr(2.0), FurLength: common.Ptr(1.4)},
			check: func(t *testing.T, q Quadruped) {
				if q.Size != 2 || q.FurLength != 1.4 {
					t.Fatalf("customizations should win, got size %v fur %v", q.Size, q.FurLength)
				}
				if q.Age != Baby {
					t.Fatalf("expected age baby, got %s", q.Age)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, CreateQuadruped(tt.form, tt.custom))
		})
	}
}

func TestCreateQuadrupedUnknownForm(t *testing.T) {
	got := CreateQuadruped(Form("dragon"), nil)
	if !reflect.DeepEqual(got, QuadrupedDefaults()) {
		t.Fatalf("unknown form should yield defaults, got %+v", got)
	}
	if DefaultQuadrupedTable().HasForm("dragon") {
		t.Fatalf("dragon should not be a known form")
	}
}

func TestCreateCustomQuadruped(t *testing.T) {
	q := CreateCustomQuadruped(&QuadrupedPatch{Size: common.Ptr(0.2), HasTail: common.Ptr(false)})
	if q.Size != 0.2 || q.HasTail {
		t.Fatalf("unexpected custom quadruped: %+v", q)
	}
	if q.LegLength != 1 {
		t.Fatalf("expected default leg length, got %v", q.LegLength)
	}
}
