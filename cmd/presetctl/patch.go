package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseSets turns key=value pairs into a nested map. Values are parsed as
// YAML so numbers, booleans and lists keep their types.
func parseSets(sets []string) (map[string]any, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	root := map[string]any{}
	for _, kv := range sets {
		key, raw, _ := strings.Cut(kv, "=")
		var val any
		if err := yaml.Unmarshal([]byte(raw), &val); err != nil {
			return nil, fmt.Errorf("parse -set %s: %w", key, err)
		}

		parts := strings.Split(key, ".")
		m := root
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		m[parts[len(parts)-1]] = val
	}
	return root, nil
}
