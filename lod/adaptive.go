package lod

import "slices"

var adaptiveOrder = []PresetName{Mobile, Performance, Desktop, Quality, Ultra}

// Adaptive steps through presets from cheapest to richest as the smoothed
// frame rate drifts away from the target. It is not safe for concurrent
// use; call Adapt from the frame loop.
type Adaptive struct {
	table    *Table
	target   float64
	smoothed float64
	index    int
}

// NewAdaptive starts at base (desktop when unknown) with fpsTarget (60 when
// not positive). The smoothed frame rate starts at the target.
func NewAdaptive(base PresetName, fpsTarget float64) *Adaptive {
	return presets.NewAdaptive(base, fpsTarget)
}

func (t *Table) NewAdaptive(base PresetName, fpsTarget float64) *Adaptive {
	if fpsTarget <= 0 {
		fpsTarget = 60
	}
	idx := slices.Index(adaptiveOrder, base)
	if idx < 0 {
		idx = slices.Index(adaptiveOrder, Desktop)
	}
	return &Adaptive{
		table:    t,
		target:   fpsTarget,
		smoothed: fpsTarget,
		index:    idx,
	}
}

func (a *Adaptive) Preset() Preset {
	return a.table.Presets[adaptiveOrder[a.index]]
}

func (a *Adaptive) SmoothedFPS() float64 {
	return a.smoothed
}

// Adapt folds fps into the running average and moves at most one step: down
// when below 80% of the target, up when above 110%.
func (a *Adaptive) Adapt(fps float64) Preset {
	a.smoothed = a.smoothed*0.9 + fps*0.1

	switch {
	case a.smoothed < a.target*0.8 && a.index > 0:
		a.index--
	case a.smoothed > a.target*1.1 && a.index < len(adaptiveOrder)-1:
		a.index++
	}

	return a.Preset()
}
