package prefabs

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](fsys fs.FS, filename string) (T, error) {
	var zero T
	data, err := Load(fsys, filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MustLoadSpec loads an embedded table and panics if it is malformed. It is
// meant for package-level table initialisation.
func MustLoadSpec[T any](filename string) T {
	spec, err := LoadSpec[T](nil, filename)
	if err != nil {
		panic(err)
	}
	return spec
}

// DecodeSpec re-decodes an already parsed value (usually a map assembled
// from flags) into a typed spec.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Color is an opaque RGB colour written as #RRGGBB in tables. CSS colour
// names are accepted when decoding.
type Color struct {
	color.NRGBA
}

func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseColor(s string) (Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("prefabs: invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return Color{}, err
	}
	g, err := parse(2)
	if err != nil {
		return Color{}, err
	}
	b, err := parse(4)
	if err != nil {
		return Color{}, err
	}

	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return Color{}, err
		}
	}

	return Color{color.NRGBA{R: r, G: g, B: b, A: a}}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefabs: color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
