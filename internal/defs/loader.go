// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"arena-survivors/internal/component"
	"arena-survivors/internal/logger"
)

// ErrArchetypeMissing is returned when the player or hostile definition is
// absent. A run cannot start without both.
var ErrArchetypeMissing = errors.New("archetype missing")

// Archetypes are the two stat templates a run is built from.
type Archetypes struct {
	Player  *component.StatBlock `yaml:"player"`
	Hostile *component.StatBlock `yaml:"hostile"`
}

// LoadArchetypes reads the archetype file at path.
func LoadArchetypes(path string) (*Archetypes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype definitions: %w", err)
	}
	a, err := ParseArchetypes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("archetypes loaded", "path", path, "hostile_ranged", a.Hostile.Ranged)
	return a, nil
}

// ParseArchetypes decodes and validates archetype YAML.
func ParseArchetypes(data []byte) (*Archetypes, error) {
	var a Archetypes
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archetype definitions: %w", err)
	}
	a.normalize()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// normalize fills in what the YAML may leave out. An omitted level means 1.
func (a *Archetypes) normalize() {
	for _, s := range []*component.StatBlock{a.Player, a.Hostile} {
		if s != nil && s.Level < 1 {
			s.Level = 1
		}
	}
}

// Validate reports definitions the simulation cannot run with. It does not
// modify a, so one set of archetypes can back several runs at once.
func (a *Archetypes) Validate() error {
	if a.Player == nil {
		return fmt.Errorf("player: %w", ErrArchetypeMissing)
	}
	if a.Hostile == nil {
		return fmt.Errorf("hostile: %w", ErrArchetypeMissing)
	}
	for _, named := range []struct {
		name  string
		stats *component.StatBlock
	}{{"player", a.Player}, {"hostile", a.Hostile}} {
		if named.stats.MaxHP <= 0 {
			return fmt.Errorf("%s: max_hp must be positive, got %v", named.name, named.stats.MaxHP)
		}
	}
	return nil
}

// DefaultArchetypes are used when no definition file is given.
func DefaultArchetypes() *Archetypes {
	return &Archetypes{
		Player: &component.StatBlock{
			MaxHP:              20,
			BaseSpeed:          5,
			AttackDamage:       2,
			AttackSpeed:        1,
			AttackRange:        10,
			ProjectileLifespan: 2,
			CritChance:         5,
			Pierce:             1,
			Level:              1,
			ExplosionDamage:    2,
			AreaDamage:         1,
		},
		Hostile: &component.StatBlock{
			MaxHP:              3,
			BaseSpeed:          2,
			AttackDamage:       1,
			AttackSpeed:        2,
			AttackRange:        6,
			ProjectileLifespan: 3,
			Pierce:             1,
			Level:              1,
			ExperienceValue:    20,
		},
	}
}
