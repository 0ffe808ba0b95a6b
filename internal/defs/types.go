// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownClass   = errors.New("unknown class")
	ErrUnknownWeapon  = errors.New("unknown weapon")
	ErrUnknownPassive = errors.New("unknown passive")
	ErrUnknownStat    = errors.New("unknown stat")
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// ClassKey identifies a playable class.
type ClassKey string

const (
	ClassAlchemist   ClassKey = "ALCHEMIST"
	ClassGravedigger ClassKey = "GRAVEDIGGER"
	ClassSentinel    ClassKey = "SENTINEL"
)

// WeaponKey identifies an active weapon. The set is closed.
type WeaponKey string

const (
	WeaponVolatileFlask    WeaponKey = "volatile_flask"
	WeaponRitualShovel     WeaponKey = "ritual_shovel"
	WeaponPurificationBell WeaponKey = "purification_bell"
)

// AllWeapons lists every weapon key in a stable order.
var AllWeapons = []WeaponKey{WeaponVolatileFlask, WeaponRitualShovel, WeaponPurificationBell}

func (k WeaponKey) Valid() bool {
	return slices.Contains(AllWeapons, k)
}

// ParseWeaponKey resolves a key once, at class-selection or load time.
func ParseWeaponKey(s string) (WeaponKey, error) {
	k := WeaponKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeapon, s)
	}
	return k, nil
}

// PassiveKey identifies a class passive. The set is closed.
type PassiveKey string

const (
	PassiveChargeBurst PassiveKey = "charge_burst"
	PassiveSoulHarvest PassiveKey = "soul_harvest"
	PassiveEcho        PassiveKey = "echo"
)

func (k PassiveKey) Valid() bool {
	switch k {
	case PassiveChargeBurst, PassiveSoulHarvest, PassiveEcho:
		return true
	}
	return false
}

func ParsePassiveKey(s string) (PassiveKey, error) {
	k := PassiveKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPassive, s)
	}
	return k, nil
}

// GroundEffectKind is the outcome rolled when a flask shatters.
type GroundEffectKind string

const (
	GroundFire   GroundEffectKind = "fire"
	GroundPoison GroundEffectKind = "poison"
	GroundSlow   GroundEffectKind = "slow"
)

// GroundEffectKinds is the roll table, in a stable order.
var GroundEffectKinds = []GroundEffectKind{GroundFire, GroundPoison, GroundSlow}

// AllyKind distinguishes summoned units.
type AllyKind string

const (
	AllySkeleton AllyKind = "skeleton"
	AllyGhost    AllyKind = "ghost"
)
