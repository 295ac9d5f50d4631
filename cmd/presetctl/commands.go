package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gamepresets/ai"
	"github.com/milk9111/gamepresets/collectible"
	"github.com/milk9111/gamepresets/creature"
	"github.com/milk9111/gamepresets/faction"
	"github.com/milk9111/gamepresets/lod"
	"github.com/milk9111/gamepresets/obstacle"
	"github.com/milk9111/gamepresets/prefabs"
	"github.com/milk9111/gamepresets/steering"
	"github.com/milk9111/gamepresets/structure"
	"github.com/milk9111/gamepresets/vehicle"
	"github.com/milk9111/gamepresets/weather"
)

type options struct {
	category string
	name     string
	patch    map[string]any

	hazard   string
	rarity   string
	theme    string
	species  string
	material string
	blend    string
	t        float64
	seed     uint64
	prompt   bool
	stats    bool
}

type command func(c *catalog, o options) (any, error)

var commands = map[string]command{
	"quadruped":   quadrupedCmd,
	"mount":       mountCmd,
	"building":    buildingCmd,
	"obstacle":    obstacleCmd,
	"collectible": collectibleCmd,
	"vehicle":     vehicleCmd,
	"lod":         lodCmd,
	"weather":     weatherCmd,
	"camera":      cameraCmd,
	"faction":     factionCmd,
	"ai":          aiCmd,
}

func commandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}

// run executes one command against c and writes its result to w. Strings
// are written as lines, anything else as YAML.
func run(w io.Writer, c *catalog, o options) error {
	var (
		out any
		err error
	)
	if o.category == "forms" {
		out, err = formsCmd(c, o)
	} else {
		cmd, ok := commands[o.category]
		if !ok {
			return fmt.Errorf("unknown category %q", o.category)
		}
		out, err = cmd(c, o)
	}
	if err != nil {
		return err
	}

	if s, ok := out.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func decodePatch[T any](o options) (*T, error) {
	if o.patch == nil {
		return nil, nil
	}
	p, err := prefabs.DecodeSpec[T](o.patch)
	if err != nil {
		return nil, fmt.Errorf("decode overrides for %s: %w", o.category, err)
	}
	return &p, nil
}

func requireName(o options) error {
	if o.name == "" {
		return fmt.Errorf("%s needs a name, see presetctl forms %s", o.category, o.category)
	}
	return nil
}

func quadrupedCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[creature.QuadrupedPatch](o)
	if err != nil {
		return nil, err
	}
	q := c.quadrupeds.Create(creature.Form(o.name), patch)

	switch {
	case o.prompt:
		var theme *creature.Theme
		if o.theme != "" {
			th, ok := creature.LookupTheme(o.theme)
			if !ok {
				return nil, fmt.Errorf("unknown theme %q", o.theme)
			}
			theme = &th
		}
		return creature.Prompt(q, theme, speciesName(o)), nil
	case o.stats:
		return c.stats.Eval(context.Background(), q)
	}
	return q, nil
}

func speciesName(o options) string {
	if o.species != "" {
		return o.species
	}
	return o.name
}

func mountCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[creature.MountPatch](o)
	if err != nil {
		return nil, err
	}
	m := c.quadrupeds.CreateMount(creature.Form(o.name), patch)
	if o.prompt {
		return creature.MountPrompt(m, speciesName(o)), nil
	}
	return m, nil
}

func buildingCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[structure.BuildingPatch](o)
	if err != nil {
		return nil, err
	}
	return c.buildings.Create(structure.Form(o.name), patch), nil
}

func obstacleCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[obstacle.Patch](o)
	if err != nil {
		return nil, err
	}
	return c.obstacles.Create(obstacle.Form(o.name), obstacle.Hazard(o.hazard), patch), nil
}

func collectibleCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[collectible.Patch](o)
	if err != nil {
		return nil, err
	}
	return c.collectibles.Create(collectible.Form(o.name), collectible.Rarity(o.rarity), patch), nil
}

func vehicleCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	patch, err := decodePatch[vehicle.Patch](o)
	if err != nil {
		return nil, err
	}
	v := c.vehicles.Create(vehicle.Form(o.name), patch)
	if o.prompt {
		material := o.material
		if material == "" {
			material = string(v.Material)
		}
		return vehicle.Prompt(v, material), nil
	}
	return v, nil
}

func lodCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	p, ok := c.lods.Lookup(lod.PresetName(o.name))
	if !ok {
		return nil, fmt.Errorf("unknown lod preset %q", o.name)
	}
	return struct {
		Preset     lod.Preset           `yaml:"preset"`
		Config     lod.Config           `yaml:"config"`
		Vegetation lod.VegetationConfig `yaml:"vegetation"`
	}{p, lod.ConfigFromPreset(p), lod.VegetationConfigFromPreset(p)}, nil
}

func weatherCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	a, ok := c.weather.Lookup(weather.PresetName(o.name))
	if !ok {
		return nil, fmt.Errorf("unknown weather preset %q", o.name)
	}
	if o.blend == "" {
		return a.ToConfig(), nil
	}
	b, ok := c.weather.Lookup(weather.PresetName(o.blend))
	if !ok {
		return nil, fmt.Errorf("unknown weather preset %q", o.blend)
	}
	return weather.Blend(a, b, o.t), nil
}

func cameraCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	v, ok := c.cameras.Lookup(o.name)
	if !ok {
		return nil, fmt.Errorf("unknown camera preset %q", o.name)
	}
	return v, nil
}

func factionCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}
	f := faction.Faction(o.name)
	if _, ok := c.factions.Palettes[f]; !ok {
		return nil, fmt.Errorf("unknown faction %q", o.name)
	}
	opts, err := decodePatch[faction.Options](o)
	if err != nil {
		return nil, err
	}
	out := make(map[faction.Part]faction.Material, len(faction.Parts))
	for _, part := range faction.Parts {
		out[part] = c.factions.MaterialFor(f, part, opts)
	}
	return out, nil
}

type agentSummary struct {
	State     steering.StateID `yaml:"state,omitempty"`
	Position  []float64        `yaml:"position,flow"`
	MaxSpeed  float64          `yaml:"max_speed"`
	MaxForce  float64          `yaml:"max_force"`
	Mass      float64          `yaml:"mass"`
	Behaviors []string         `yaml:"behaviors,flow"`
}

func summarize(p *ai.Preset) agentSummary {
	s := agentSummary{
		Position: p.Vehicle.Position[:],
		MaxSpeed: p.Vehicle.MaxSpeed,
		MaxForce: p.Vehicle.MaxForce,
		Mass:     p.Vehicle.Mass,
	}
	if p.Machine != nil {
		s.State = p.Machine.Current()
	}
	for _, b := range p.Vehicle.ActiveBehaviors() {
		s.Behaviors = append(s.Behaviors, string(b.Kind()))
	}
	return s
}

func aiCmd(c *catalog, o options) (any, error) {
	if err := requireName(o); err != nil {
		return nil, err
	}

	var (
		p   *ai.Preset
		err error
	)
	switch o.name {
	case "guard":
		var cfg *ai.GuardConfig
		if cfg, err = decodePatch[ai.GuardConfig](o); err == nil {
			p, err = c.agents.NewGuard(deref(cfg))
		}
	case "predator":
		var cfg *ai.PredatorConfig
		if cfg, err = decodePatch[ai.PredatorConfig](o); err == nil {
			p, err = c.agents.NewPredator(deref(cfg))
		}
	case "prey":
		var cfg *ai.PreyConfig
		if cfg, err = decodePatch[ai.PreyConfig](o); err == nil {
			p, err = c.agents.NewPrey(deref(cfg))
		}
	case "follower":
		var cfg *ai.FollowerConfig
		if cfg, err = decodePatch[ai.FollowerConfig](o); err == nil {
			p = c.agents.NewFollower(deref(cfg))
		}
	case "flock_member":
		var cfg *ai.FlockMemberConfig
		if cfg, err = decodePatch[ai.FlockMemberConfig](o); err == nil {
			p = c.agents.NewFlockMember(deref(cfg))
		}
	case "flock":
		return flockCmd(c, o)
	default:
		return nil, fmt.Errorf("unknown agent %q", o.name)
	}
	if err != nil {
		return nil, err
	}
	return summarize(p), nil
}

func flockCmd(c *catalog, o options) (any, error) {
	cfg, err := decodePatch[ai.FlockConfig](o)
	if err != nil {
		return nil, err
	}
	members, err := c.agents.NewFlock(deref(cfg), rand.New(rand.NewPCG(o.seed, o.seed)))
	if err != nil {
		return nil, err
	}
	out := make([]agentSummary, 0, len(members))
	for _, m := range members {
		out = append(out, summarize(m))
	}
	return out, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func formsCmd(c *catalog, o options) (any, error) {
	var names []string
	switch o.name {
	case "quadruped", "mount":
		names = stringsOf(c.quadrupeds.FormNames())
	case "building":
		names = stringsOf(c.buildings.FormNames())
	case "obstacle":
		names = stringsOf(c.obstacles.FormNames())
	case "collectible":
		names = stringsOf(c.collectibles.FormNames())
	case "vehicle":
		names = stringsOf(c.vehicles.FormNames())
	case "lod":
		names = stringsOf(slices.Sorted(maps.Keys(c.lods.Presets)))
	case "weather":
		names = stringsOf(slices.Sorted(maps.Keys(c.weather.Presets)))
	case "camera":
		names = c.cameras.Names()
	case "faction":
		names = stringsOf(slices.Sorted(maps.Keys(c.factions.Palettes)))
	case "ai":
		names = []string{"flock", "flock_member", "follower", "guard", "predator", "prey"}
	default:
		return nil, fmt.Errorf("no forms for %q", o.name)
	}
	return names, nil
}

func stringsOf[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
