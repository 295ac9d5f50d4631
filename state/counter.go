package state

import "github.com/milk9111/gamepresets/common"

type Counter struct {
	Count       int   `yaml:"count"`
	LastUpdated int64 `yaml:"last_updated"`
}

type CounterPatch struct {
	Count       *int   `yaml:"count,omitempty"`
	LastUpdated *int64 `yaml:"last_updated,omitempty"`
}

func (p *CounterPatch) ApplyTo(dst *Counter) {
	if p == nil {
		return
	}
	common.Override(&dst.Count, p.Count)
	common.Override(&dst.LastUpdated, p.LastUpdated)
}

// NewCounterState stamps LastUpdated in Unix milliseconds from clock.
func NewCounterState(clock Clock, overrides *CounterPatch) Counter {
	var s Counter
	if clock != nil {
		s.LastUpdated = clock.Now().UnixMilli()
	}
	overrides.ApplyTo(&s)
	return s
}

func NewCounterPreset(clock Clock, overrides *CounterPatch) Preset[Counter] {
	return Preset[Counter]{Info: presets.Presets[CounterPreset], InitialState: NewCounterState(clock, overrides)}
}
