package system

import (
	"testing"
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

func TestCooldownGating(t *testing.T) {
	h := newHarness(t)
	aim := h.ecs.Player.Pos.Add(types.Vec2{X: 100})
	key := defs.WeaponVolatileFlask

	if !h.weapons.Ready(key) {
		t.Fatal("weapon should start ready")
	}
	if !h.weapons.Use(key, aim) {
		t.Fatal("first use should fire")
	}
	if h.weapons.Use(key, aim) {
		t.Error("use on cooldown must be a no-op")
	}
	if n := len(h.ecs.Projectiles); n != 1 {
		t.Errorf("projectiles = %d, want 1", n)
	}
	if n := h.rec.count(event.WeaponFired); n != 1 {
		t.Errorf("WeaponFired = %d, want 1", n)
	}

	h.advance(h.tuning.Flask.Cooldown - time.Millisecond)
	if h.weapons.Ready(key) {
		t.Error("should still be on cooldown")
	}
	h.advance(time.Millisecond)
	if !h.weapons.Ready(key) {
		t.Error("should be ready once the cooldown elapsed")
	}
}

func TestResetAllCooldowns(t *testing.T) {
	h := newHarness(t)
	aim := h.ecs.Player.Pos.Add(types.Vec2{X: 100})
	for _, key := range defs.AllWeapons {
		h.weapons.Use(key, aim)
		if h.weapons.Ready(key) {
			t.Fatalf("%s should be on cooldown", key)
		}
	}
	h.weapons.ResetAllCooldowns()
	for _, key := range defs.AllWeapons {
		if !h.weapons.Ready(key) || h.weapons.Remaining(key) != 0 {
			t.Errorf("%s not ready after reset", key)
		}
	}
	if !h.weapons.Use(defs.WeaponVolatileFlask, aim) {
		t.Error("use right after reset should fire")
	}
}

func TestUnknownWeaponSkipped(t *testing.T) {
	h := newHarness(t)
	if h.weapons.Use("laser", types.Vec2{}) {
		t.Error("unknown weapon must not fire")
	}
	if n := len(h.rec.events); n != 0 {
		t.Errorf("unexpected events: %d", n)
	}
}

func TestBellPushesAndDamages(t *testing.T) {
	h := newHarness(t)
	p := h.ecs.Player
	p.KnockbackBonus = 1.3
	p.PushDamageBonus = 1
	in := h.enemyAt(100, 0)
	out := h.enemyAt(200, 0)

	if !h.weapons.Use(defs.WeaponPurificationBell, p.Pos) {
		t.Fatal("bell should fire")
	}
	wantDmg := h.tuning.Bell.Damage + 1
	if in.HP != in.MaxHP-wantDmg {
		t.Errorf("hp = %d, want %d", in.HP, in.MaxHP-wantDmg)
	}
	if out.HP != out.MaxHP {
		t.Error("enemy outside the radius was hit")
	}
	wantForce := h.tuning.Bell.Knockback * 1.3
	if v := in.Knockback.Velocity; v.X < wantForce-1e-9 || v.Y != 0 {
		t.Errorf("knockback = %v, want (%v, 0)", v, wantForce)
	}
	if n := h.rec.count(event.EnemyPushed); n != 1 {
		t.Errorf("EnemyPushed = %d, want 1", n)
	}
}
