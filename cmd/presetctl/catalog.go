package main

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/milk9111/gamepresets/ai"
	"github.com/milk9111/gamepresets/camera"
	"github.com/milk9111/gamepresets/collectible"
	"github.com/milk9111/gamepresets/creature"
	"github.com/milk9111/gamepresets/faction"
	"github.com/milk9111/gamepresets/lod"
	"github.com/milk9111/gamepresets/obstacle"
	"github.com/milk9111/gamepresets/structure"
	"github.com/milk9111/gamepresets/vehicle"
	"github.com/milk9111/gamepresets/weather"
)

const statScriptName = "creature_stats"

// catalog is one consistent snapshot of every table the commands read.
type catalog struct {
	quadrupeds   *creature.QuadrupedTable
	buildings    *structure.Table
	obstacles    *obstacle.Table
	collectibles *collectible.Table
	vehicles     *vehicle.Table
	lods         *lod.Table
	weather      *weather.Table
	cameras      *camera.Table
	factions     *faction.Table
	agents       *ai.Table
	stats        *creature.StatScript
}

func load[T any](dst *T, name string, fn func(fs.FS) (T, error), fsys fs.FS) error {
	v, err := fn(fsys)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	*dst = v
	return nil
}

// loadCatalog reads every table from fsys. A nil fsys uses the built-in
// tables.
func loadCatalog(fsys fs.FS) (*catalog, error) {
	c := &catalog{}
	steps := []func() error{
		func() error { return load(&c.quadrupeds, "quadrupeds", creature.LoadQuadrupedTable, fsys) },
		func() error { return load(&c.buildings, "buildings", structure.LoadTable, fsys) },
		func() error { return load(&c.obstacles, "obstacles", obstacle.LoadTable, fsys) },
		func() error { return load(&c.collectibles, "collectibles", collectible.LoadTable, fsys) },
		func() error { return load(&c.vehicles, "vehicles", vehicle.LoadTable, fsys) },
		func() error { return load(&c.lods, "lod", lod.LoadTable, fsys) },
		func() error { return load(&c.weather, "weather", weather.LoadTable, fsys) },
		func() error { return load(&c.cameras, "cameras", camera.LoadTable, fsys) },
		func() error { return load(&c.factions, "factions", faction.LoadTable, fsys) },
		func() error { return load(&c.agents, "ai", ai.LoadTable, fsys) },
		func() error {
			s, err := creature.LoadStatScript(fsys, statScriptName)
			if err != nil {
				return err
			}
			c.stats = s
			return nil
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type store struct {
	mu  sync.RWMutex
	cat *catalog
}

func (s *store) get() *catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

func (s *store) swap(c *catalog) {
	s.mu.Lock()
	s.cat = c
	s.mu.Unlock()
}
