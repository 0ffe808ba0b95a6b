package component

import (
	"testing"
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/types"
)

func newTestPlayer() *Player {
	tun := defs.DefaultTuning()
	return NewPlayer(tun.Player, tun.Progression, defs.ClassBase{SpeedMultiplier: 1, DamageMultiplier: 1}, types.Vec2{})
}

func TestPlayerHPClamped(t *testing.T) {
	p := newTestPlayer()
	if got := p.Damage(30); got != 30 || p.CurrentHP != 70 {
		t.Errorf("damage 30: lost=%d hp=%d", got, p.CurrentHP)
	}
	p.Heal(500)
	if p.CurrentHP != p.MaxHP {
		t.Errorf("heal should clamp to max, got %d", p.CurrentHP)
	}
	if got := p.Damage(1000); got != p.MaxHP || p.CurrentHP != 0 {
		t.Errorf("overkill: lost=%d hp=%d", got, p.CurrentHP)
	}
	if !p.IsDead() {
		t.Error("player at 0 HP should be dead")
	}
}

func TestPlayerMaxHPShrinkClampsCurrent(t *testing.T) {
	p := newTestPlayer()
	p.SetStat(defs.StatMaxHP, 80)
	if p.MaxHP != 80 || p.CurrentHP != 80 {
		t.Errorf("max=%d cur=%d, want 80/80", p.MaxHP, p.CurrentHP)
	}
}

func TestPlayerStatRoundTrip(t *testing.T) {
	p := newTestPlayer()
	stats := []defs.Stat{
		defs.StatSpeed, defs.StatMaxHP, defs.StatBaseDamage, defs.StatAuraRange,
		defs.StatMagnetRadius, defs.StatDamageMultiplier, defs.StatDebuffDuration,
		defs.StatDOTBonus, defs.StatKnockbackBonus, defs.StatPushDamageBonus,
		defs.StatSlowRadiusBonus, defs.StatSummonDuration, defs.StatSummonCount,
	}
	for _, s := range stats {
		if !p.SetStat(s, 3) {
			t.Errorf("SetStat(%s) rejected", s)
			continue
		}
		if v, ok := p.Stat(s); !ok || v != 3 {
			t.Errorf("Stat(%s) = %v, %v", s, v, ok)
		}
	}
	if _, ok := p.Stat("luck"); ok {
		t.Error("unknown stat should not resolve")
	}
}

func TestClassBaseApplied(t *testing.T) {
	tun := defs.DefaultTuning()
	p := NewPlayer(tun.Player, tun.Progression, defs.ClassBase{SpeedMultiplier: 0.9, DamageMultiplier: 1.15, AuraRangeBonus: 10}, types.Vec2{})
	if p.Speed != 180 {
		t.Errorf("speed = %v, want 180", p.Speed)
	}
	if p.AuraRange != 120 {
		t.Errorf("aura = %v, want 120", p.AuraRange)
	}
	if got := p.ScaledDamage(20); got != 23 {
		t.Errorf("scaled damage = %d, want 23", got)
	}
}

func TestEnemyDiesOnce(t *testing.T) {
	e := &Enemy{HP: 50, MaxHP: 50}
	hits := []struct {
		dmg    int
		killed bool
		hp     int
	}{
		{20, false, 30},
		{20, false, 10},
		{20, true, -10},
		{20, false, -10},
	}
	for i, h := range hits {
		if got := e.TakeDamage(h.dmg); got != h.killed {
			t.Errorf("hit %d: killed = %v, want %v", i, got, h.killed)
		}
		if e.HP != h.hp {
			t.Errorf("hit %d: hp = %d, want %d", i, e.HP, h.hp)
		}
	}
	if e.Lifecycle != Dying {
		t.Errorf("lifecycle = %s, want dying", e.Lifecycle)
	}
}

func TestOrbCollectOnce(t *testing.T) {
	o := &XPOrb{Value: 5}
	if !o.Collect() {
		t.Fatal("first collect should succeed")
	}
	if o.Collect() {
		t.Error("second collect must be a no-op")
	}
}

func TestFloatingTextProgress(t *testing.T) {
	f := &FloatingText{SpawnedAt: time.Second, Lifetime: time.Second}
	if p := f.Progress(1500 * time.Millisecond); p != 0.5 {
		t.Errorf("progress = %v, want 0.5", p)
	}
	if p := f.Progress(5 * time.Second); p != 1 {
		t.Errorf("progress = %v, want 1", p)
	}
}
