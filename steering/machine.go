package steering

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownState = errors.New("steering: unknown state")

type StateID string

// StateDef is everything a state does on entry: it caps the owner's speed
// and leaves exactly the Active behaviors switched on among those the
// machine manages.
type StateDef struct {
	MaxSpeed float64
	Active   []Behavior
}

type StateTable map[StateID]StateDef

// Machine drives a vehicle through a StateTable. Behaviors that appear in
// any state are managed; every other behavior on the vehicle is left alone.
type Machine struct {
	owner    *Vehicle
	states   StateTable
	managed  []Behavior
	current  StateID
	previous StateID
}

// NewMachine enters initial immediately, so the owner starts with that
// state's speed and behavior set.
func NewMachine(owner *Vehicle, states StateTable, initial StateID) (*Machine, error) {
	m := &Machine{owner: owner, states: states}
	for _, def := range states {
		for _, b := range def.Active {
			if !slices.Contains(m.managed, b) {
				m.managed = append(m.managed, b)
			}
		}
	}

	if err := m.ChangeTo(initial); err != nil {
		return nil, err
	}
	m.previous = ""
	return m, nil
}

func (m *Machine) Owner() *Vehicle { return m.owner }

func (m *Machine) Current() StateID { return m.current }

func (m *Machine) Previous() StateID { return m.previous }

func (m *Machine) In(id StateID) bool { return m.current == id }

// ChangeTo enters id even when it is already current.
func (m *Machine) ChangeTo(id StateID) error {
	def, ok := m.states[id]
	if !ok {
		return fmt.Errorf("steering: change to %q: %w", id, ErrUnknownState)
	}

	for _, b := range m.managed {
		b.Config().Active = false
	}
	for _, b := range def.Active {
		b.Config().Active = true
	}
	m.owner.MaxSpeed = def.MaxSpeed

	m.previous = m.current
	m.current = id
	return nil
}

// Revert returns to the previous state. It is a no-op before the first
// change.
func (m *Machine) Revert() error {
	if m.previous == "" {
		return nil
	}
	return m.ChangeTo(m.previous)
}
