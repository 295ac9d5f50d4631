package creature

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gamepresets/prefabs"
)

var ErrMissingStat = errors.New("creature: stat script did not define stat")

const statScriptFile = "creature_stats.tengo"

var statNames = [...]string{"speed", "health", "agility", "strength"}

// StatScript evaluates designer supplied stat formulas. The script sees the
// composed creature as __params and must assign speed, health, agility and
// strength. A StatScript is safe for concurrent use.
type StatScript struct {
	compiled *tengo.Compiled
}

func CompileStatScript(src []byte) (*StatScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("__params", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("creature: compile stat script: %w", err)
	}

	// Globals only count as defined once assigned, so the script is checked
	// by one run over the default creature.
	s := &StatScript{compiled: compiled}
	if _, err := s.Eval(context.Background(), QuadrupedDefaults()); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadStatScript(fsys fs.FS, name string) (*StatScript, error) {
	src, err := prefabs.LoadScript(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("creature: load stat script %s: %w", name, err)
	}
	return CompileStatScript(src)
}

var defaultStatScript = sync.OnceValues(func() (*StatScript, error) {
	return LoadStatScript(nil, statScriptFile)
})

// DefaultStatScript returns the embedded script, which mirrors
// SuggestGameplayStats.
func DefaultStatScript() (*StatScript, error) {
	return defaultStatScript()
}

func (s *StatScript) Eval(ctx context.Context, p Quadruped) (GameplayStats, error) {
	params, err := prefabs.DecodeSpec[map[string]any](p)
	if err != nil {
		return GameplayStats{}, fmt.Errorf("creature: encode params: %w", err)
	}

	run := s.compiled.Clone()
	if err := run.Set("__params", params); err != nil {
		return GameplayStats{}, fmt.Errorf("creature: bind params: %w", err)
	}
	if err := run.RunContext(ctx); err != nil {
		return GameplayStats{}, fmt.Errorf("creature: run stat script: %w", err)
	}

	var values [len(statNames)]float64
	for i, name := range statNames {
		if !run.IsDefined(name) {
			return GameplayStats{}, fmt.Errorf("%w: %s", ErrMissingStat, name)
		}
		values[i] = run.Get(name).Float()
	}

	return roundStats(GameplayStats{
		Speed:    values[0],
		Health:   values[1],
		Agility:  values[2],
		Strength: values[3],
	}), nil
}
