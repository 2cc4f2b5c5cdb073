// internal/defs/choices.go
package defs

import (
	"fmt"
	"strings"
)

// StatChoice is a closed set of odd-level picks.
type StatChoice int

const (
	StatNone StatChoice = iota
	StatAttackDamage
	StatAttackSpeed
	StatAttackRange
	StatMaxHP
	StatCritChance
	StatPierce
	StatExpMultiplier
)

var statNames = map[StatChoice]string{
	StatAttackDamage:  "attackDamage",
	StatAttackSpeed:   "attackSpeed",
	StatAttackRange:   "attackRange",
	StatMaxHP:         "maxHp",
	StatCritChance:    "critChance",
	StatPierce:        "pierce",
	StatExpMultiplier: "expMultiplier",
}

// StatChoices lists the stat picks in menu order.
var StatChoices = []StatChoice{
	StatAttackDamage, StatAttackSpeed, StatAttackRange, StatMaxHP,
	StatCritChance, StatPierce, StatExpMultiplier,
}

func (c StatChoice) String() string {
	if s, ok := statNames[c]; ok {
		return s
	}
	return "none"
}

// UpgradeChoice is a closed set of even-level picks.
type UpgradeChoice int

const (
	UpgradeNone UpgradeChoice = iota
	UpgradeExplosion
	UpgradeMultiProjectile
	UpgradeDeathField
)

var upgradeNames = map[UpgradeChoice]string{
	UpgradeExplosion:       "explosion",
	UpgradeMultiProjectile: "multiProjectile",
	UpgradeDeathField:      "deathField",
}

// UpgradeChoices lists the upgrade picks in menu order.
var UpgradeChoices = []UpgradeChoice{UpgradeExplosion, UpgradeMultiProjectile, UpgradeDeathField}

func (c UpgradeChoice) String() string {
	if s, ok := upgradeNames[c]; ok {
		return s
	}
	return "none"
}

// ParseStatChoice maps a key such as "maxHp" to its choice. Unknown keys
// yield StatNone and an error the caller may ignore.
func ParseStatChoice(key string) (StatChoice, error) {
	for c, name := range statNames {
		if strings.EqualFold(name, key) {
			return c, nil
		}
	}
	return StatNone, fmt.Errorf("unknown stat choice %q", key)
}

// ParseUpgradeChoice maps a key such as "deathField" to its choice.
func ParseUpgradeChoice(key string) (UpgradeChoice, error) {
	for c, name := range upgradeNames {
		if strings.EqualFold(name, key) {
			return c, nil
		}
	}
	return UpgradeNone, fmt.Errorf("unknown upgrade choice %q", key)
}

// Selection is the answer to one level-up screen. At most one of the two
// fields is meaningful for a given screen; the zero value means no pick.
type Selection struct {
	Stat    StatChoice
	Upgrade UpgradeChoice
}

// PickStat builds a stat selection.
func PickStat(c StatChoice) Selection { return Selection{Stat: c} }

// PickUpgrade builds an upgrade selection.
func PickUpgrade(c UpgradeChoice) Selection { return Selection{Upgrade: c} }

// ParseSelection resolves a raw key against both tables. Unknown keys give
// the empty selection.
func ParseSelection(key string) Selection {
	if c, err := ParseStatChoice(key); err == nil {
		return PickStat(c)
	}
	if c, err := ParseUpgradeChoice(key); err == nil {
		return PickUpgrade(c)
	}
	return Selection{}
}

func (s Selection) String() string {
	switch {
	case s.Stat != StatNone:
		return s.Stat.String()
	case s.Upgrade != UpgradeNone:
		return s.Upgrade.String()
	}
	return "none"
}

// MenuOptions lists the picks of one screen in display order.
func MenuOptions(upgradeScreen bool) []Selection {
	if upgradeScreen {
		out := make([]Selection, len(UpgradeChoices))
		for i, c := range UpgradeChoices {
			out[i] = PickUpgrade(c)
		}
		return out
	}
	out := make([]Selection, len(StatChoices))
	for i, c := range StatChoices {
		out[i] = PickStat(c)
	}
	return out
}

// SelectionAt returns the index-th option of a screen, or the empty
// selection when index is out of range.
func SelectionAt(upgradeScreen bool, index int) Selection {
	opts := MenuOptions(upgradeScreen)
	if index < 0 || index >= len(opts) {
		return Selection{}
	}
	return opts[index]
}
