package structure

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestCreateBuildingForms(t *testing.T) {
	forms := Forms()
	if len(forms) != 16 {
		t.Fatalf("expected 16 forms, got %d", len(forms))
	}
	for _, form := range forms {
		t.Run(string(form), func(t *testing.T) {
			b := CreateBuilding(form, nil)
			if b.Width <= 0 || b.Depth <= 0 || b.WallHeight <= 0 {
				t.Fatalf("expected positive dimensions, got %+v", b)
			}
			if b.Floors < 1 {
				t.Fatalf("expected at least one floor, got %d", b.Floors)
			}
		})
	}
}

func TestCreateBuildingLayerPrecedence(t *testing.T) {
	cabin := CreateBuilding(Cabin, nil)
	if cabin.Floors != 1 {
		t.Fatalf("cabin should keep default floors, got %d", cabin.Floors)
	}
	if cabin.RoofType != RoofTypeGabled || !cabin.HasChimney || cabin.ChimneyHeight != 1.5 {
		t.Fatalf("unexpected cabin: %+v", cabin)
	}

	custom := CreateBuilding(Cabin, &BuildingPatch{Floors: intPtr(3)})
	if custom.Floors != 3 {
		t.Fatalf("customization should win, got %d floors", custom.Floors)
	}

	wall := WallMaterialBrick
	brick := CreateBuilding(Cabin, &BuildingPatch{WallMaterial: &wall})
	if brick.WallMaterial != WallMaterialBrick {
		t.Fatalf("expected brick walls, got %s", brick.WallMaterial)
	}
	if brick.RoofMaterial != RoofMaterialShingle {
		t.Fatalf("form roof material should survive, got %s", brick.RoofMaterial)
	}
}

func TestCreateBuildingIsIdempotent(t *testing.T) {
	if !reflect.DeepEqual(CreateBuilding(Lighthouse, nil), CreateBuilding(Lighthouse, nil)) {
		t.Fatalf("expected identical results")
	}
}

func TestCreateBuildingHut(t *testing.T) {
	hut := CreateBuilding(Hut, nil)
	if hut.FoundationType != FoundationTypeStilts || hut.RoofType != RoofTypeConical {
		t.Fatalf("unexpected hut: %+v", hut)
	}
	if hut.WindowsPerWall != 0 || hut.WindowStyle != WindowStyleNone {
		t.Fatalf("hut should have no windows, got %+v", hut)
	}
}

func TestCreateBuildingUnknownForm(t *testing.T) {
	if got := CreateBuilding("castle", nil); !reflect.DeepEqual(got, Defaults()) {
		t.Fatalf("unknown form should yield defaults")
	}
	if DefaultTable().HasForm("castle") {
		t.Fatalf("castle should not be a known form")
	}
}
