package system

import (
	"testing"

	"chaos-rush/internal/types"
)

func TestAuraHitsEachEnemyOncePerTick(t *testing.T) {
	h := newHarness(t)
	h.aura.Start()
	e := h.enemyAt(50, 0)
	for i := 0; i < 5; i++ {
		h.aura.Update()
	}
	if h.aura.Tracked() != 1 {
		t.Fatalf("tracked = %d, want 1", h.aura.Tracked())
	}
	h.advance(h.ecs.Player.DamageInterval)
	if want := e.MaxHP - h.tuning.Player.BaseDamage; e.HP != want {
		t.Errorf("hp = %d, want %d", e.HP, want)
	}
	if h.aura.Tracked() != 0 {
		t.Error("set should be cleared after a tick")
	}
}

func TestAuraEnterAndLeaveBetweenTicks(t *testing.T) {
	h := newHarness(t)
	h.aura.Start()
	e := h.enemyAt(50, 0)
	h.aura.Update()
	e.Pos = h.ecs.Player.Pos.Add(types.Vec2{X: 300})
	h.aura.Update()
	h.advance(h.ecs.Player.DamageInterval)
	if e.HP != e.MaxHP-h.tuning.Player.BaseDamage {
		t.Errorf("enemy that left still owes one hit, hp = %d", e.HP)
	}
	h.aura.Update()
	h.advance(h.ecs.Player.DamageInterval)
	if e.HP != e.MaxHP-h.tuning.Player.BaseDamage {
		t.Errorf("enemy outside the aura was hit again, hp = %d", e.HP)
	}
}

func TestAuraScalesWithDamageMultiplier(t *testing.T) {
	h := newHarness(t)
	h.ecs.Player.DamageMultiplier = 1.5
	h.aura.Start()
	e := h.enemyAt(0, 30)
	h.aura.Update()
	h.advance(h.ecs.Player.DamageInterval)
	if want := e.MaxHP - h.ecs.Player.ScaledDamage(h.tuning.Player.BaseDamage); e.HP != want {
		t.Errorf("hp = %d, want %d", e.HP, want)
	}
}

func TestAuraSkipsDeadEnemies(t *testing.T) {
	h := newHarness(t)
	h.aura.Start()
	e := h.enemyAt(50, 0)
	h.aura.Update()
	h.damage.ApplyDamage(e, e.HP)
	h.advance(h.ecs.Player.DamageInterval)
	if e.HP != 0 {
		t.Errorf("hp = %d, dead enemy was hit again", e.HP)
	}
}
