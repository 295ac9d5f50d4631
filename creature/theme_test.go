package creature

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestThemesLoaded(t *testing.T) {
	if n := len(NaturalThemes()); n != 9 {
		t.Fatalf("expected 9 natural themes, got %d", n)
	}
	if n := len(FantasyThemes()); n != 10 {
		t.Fatalf("expected 10 fantasy themes, got %d", n)
	}

	for _, theme := range AllThemes() {
		t.Run(theme.ID, func(t *testing.T) {
			for _, c := range []string{
				theme.Primary.String(), theme.Secondary.String(), theme.Underbelly.String(),
				theme.Eyes.String(), theme.Nose.String(), theme.Claws.String(),
			} {
				if !hexColor.MatchString(c) {
					t.Fatalf("invalid colour %q", c)
				}
			}
			if theme.Roughness < 0 || theme.Roughness > 1 || theme.Metalness < 0 || theme.Metalness > 1 {
				t.Fatalf("material values out of range: %v/%v", theme.Roughness, theme.Metalness)
			}
			if len(theme.Tags) == 0 {
				t.Fatalf("theme has no tags")
			}
		})
	}
}

func TestLookupTheme(t *testing.T) {
	arctic, ok := LookupTheme("arctic")
	if !ok {
		t.Fatalf("arctic missing")
	}
	if arctic.Primary.String() != "#E3F2FD" || arctic.Pattern != Gradient {
		t.Fatalf("unexpected arctic theme: %+v", arctic)
	}
	if arctic.Accent == nil || arctic.Accent.String() != "#64B5F6" {
		t.Fatalf("expected arctic accent #64B5F6, got %v", arctic.Accent)
	}

	arctic.Tags[0] = "changed"
	again, _ := LookupTheme("arctic")
	if again.Tags[0] != "fantasy" {
		t.Fatalf("lookup should return a copy, got tags %v", again.Tags)
	}

	if _, ok := LookupTheme("plaid"); ok {
		t.Fatalf("plaid should not exist")
	}
}

func TestThemesByTag(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{tag: "pattern", want: []string{"spotted", "striped", "tuxedo"}},
		{tag: "magic", want: []string{"crystalline", "royal"}},
		{tag: "unknown", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := ThemesByTag(tt.tag)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d themes, want %d", len(got), len(tt.want))
			}
			for i, theme := range got {
				if theme.ID != tt.want[i] {
					t.Fatalf("theme %d = %s, want %s", i, theme.ID, tt.want[i])
				}
			}
		})
	}
}
