package creature

import "github.com/milk9111/gamepresets/common"

type GameplayStats struct {
	Speed    float64 `yaml:"speed"`
	Health   float64 `yaml:"health"`
	Agility  float64 `yaml:"agility"`
	Strength float64 `yaml:"strength"`
}

// SuggestGameplayStats derives a stat bundle from body proportions. Speed,
// agility and strength are rounded to two places and health to a whole
// number.
func SuggestGameplayStats(p Quadruped) GameplayStats {
	lean := p.Build == Lean || p.Build == Thin
	bulky := p.Build == Stocky || p.Build == Heavy

	speed := p.LegLength*0.4 + (1/p.BodyBulk)*0.3
	if lean {
		speed += 0.2
	}
	switch p.Age {
	case Adult:
		speed += 0.1
	case Young:
		speed += 0.05
	}

	health := p.Size*40 + p.BodyBulk*30
	if bulky {
		health += 20
	}
	switch p.Age {
	case Adult:
		health += 10
	case Old:
		health -= 10
	default:
		health -= 20
	}

	agility := (1/p.Size)*0.3 + p.TailLength*0.2
	if lean {
		agility += 0.2
	}
	switch p.Age {
	case Young:
		agility += 0.2
	case Baby:
		agility += 0.1
	}

	strength := p.BodyBulk*0.4 + p.ClawLength*0.2 + p.PawSize*0.2
	if bulky {
		strength += 0.2
	}

	return roundStats(GameplayStats{
		Speed:    speed,
		Health:   health,
		Agility:  agility,
		Strength: strength,
	})
}

func roundStats(s GameplayStats) GameplayStats {
	return GameplayStats{
		Speed:    common.Round(s.Speed, 2),
		Health:   common.Round(s.Health, 0),
		Agility:  common.Round(s.Agility, 2),
		Strength: common.Round(s.Strength, 2),
	}
}
