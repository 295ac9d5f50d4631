package creature

import "strings"

// Prompt describes a composed creature in the order age, build, species,
// size band, fur, colour, pattern, notable features, condition and eye
// colour. Colour phrases are skipped when theme is nil.
func Prompt(p Quadruped, theme *Theme, species string) string {
	var parts []string

	if p.Age != Adult {
		parts = append(parts, string(p.Age))
	}
	if p.Build != Average {
		parts = append(parts, string(p.Build))
	}

	if species == "" {
		species = "creature"
	}
	parts = append(parts, species)

	// "massive" sits behind the "large" band and never fires; kept so
	// existing prompt outputs stay stable.
	switch {
	case p.Size < 0.5:
		parts = append(parts, "tiny")
	case p.Size < 0.8:
		parts = append(parts, "small")
	case p.Size > 1.5:
		parts = append(parts, "large")
	case p.Size > 2:
		parts = append(parts, "massive")
	}

	switch {
	case p.FurLength > 1.3:
		parts = append(parts, "fluffy fur")
	case p.FurLength < 0.5:
		parts = append(parts, "short fur")
	}

	if theme != nil {
		parts = append(parts, theme.Primary.String()+" colored")
		if theme.Pattern != Solid {
			parts = append(parts, string(theme.Pattern)+" pattern")
			parts = append(parts, "with "+theme.Secondary.String()+" markings")
		}
	}

	features := []struct {
		on   bool
		text string
	}{
		{p.EarSize > 1.3, "large ears"},
		{p.EyeSize > 1.2, "big eyes"},
		{p.SnoutLength > 1.3, "long snout"},
		{p.SnoutLength < 0.6, "short snout"},
		{p.TailLength > 1.3, "long tail"},
		{p.TailFluff > 0.8, "bushy tail"},
		{p.WhiskerLength > 0.8, "prominent whiskers"},
		{p.Webbing > 0.5, "webbed feet"},
		{p.HornSize > 0, "horned"},
		{p.Mane > 0.5, "with mane"},
	}
	for _, f := range features {
		if f.on {
			parts = append(parts, f.text)
		}
	}

	switch {
	case p.Wear > 0.5:
		parts = append(parts, "battle-scarred")
	case p.Wear > 0.2:
		parts = append(parts, "weathered")
	}

	if theme != nil {
		parts = append(parts, theme.Eyes.String()+" eyes")
	}

	return strings.Join(parts, ", ")
}
