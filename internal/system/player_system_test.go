package system

import (
	"math"
	"testing"

	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

func TestPlayerMove(t *testing.T) {
	h := newHarness(t)
	p := h.ecs.Player
	start := p.Pos

	h.player.Move(1, 1, 0.5)
	if d := p.Pos.Dist(start); math.Abs(d-p.Speed*0.5) > 1e-9 {
		t.Errorf("diagonal moved %v, want %v", d, p.Speed*0.5)
	}

	h.player.Move(-1, 0, 100)
	if p.Pos.X != p.Radius {
		t.Errorf("x = %v, want clamped to %v", p.Pos.X, p.Radius)
	}
	h.player.Move(0, 1, 100)
	if p.Pos.Y != h.tuning.Arena.Height-p.Radius {
		t.Errorf("y = %v, want clamped", p.Pos.Y)
	}
}

func TestContactDamageWithInvulnerability(t *testing.T) {
	h := newHarness(t)
	p := h.ecs.Player
	h.enemyAt(15, 0)

	h.player.Update()
	if p.CurrentHP != p.MaxHP-h.tuning.Player.ContactDamage {
		t.Fatalf("hp = %d", p.CurrentHP)
	}
	h.player.Update()
	h.advance(h.tuning.Player.HitInvulnerability / 2)
	h.player.Update()
	if n := h.rec.count(event.PlayerHit); n != 1 {
		t.Errorf("PlayerHit = %d during invulnerability", n)
	}
	h.advance(h.tuning.Player.HitInvulnerability / 2)
	h.player.Update()
	if p.CurrentHP != p.MaxHP-2*h.tuning.Player.ContactDamage {
		t.Errorf("hp = %d after invulnerability", p.CurrentHP)
	}
}

func TestNoContactNoDamage(t *testing.T) {
	h := newHarness(t)
	h.enemyAt(50, 0)
	h.player.Update()
	if h.ecs.Player.CurrentHP != h.ecs.Player.MaxHP {
		t.Error("distant enemy hurt the player")
	}
}

func TestPlayerDeathEmittedOnce(t *testing.T) {
	h := newHarness(t)
	p := h.ecs.Player
	p.SetHP(5)
	h.enemyAt(0, 10)
	h.player.Update()
	if !p.IsDead() || p.CurrentHP != 0 {
		t.Fatalf("hp = %d", p.CurrentHP)
	}
	h.advance(h.tuning.Player.HitInvulnerability * 2)
	h.player.Update()
	if n := h.rec.count(event.PlayerDeath); n != 1 {
		t.Errorf("PlayerDeath = %d, want 1", n)
	}
}

func TestMovementPursuesPlayer(t *testing.T) {
	h := newHarness(t)
	e := h.enemyAt(100, 0)
	h.movement.Update(0.1)
	want := 100 - h.tuning.Enemy.Speed*0.1
	if d := e.Pos.Dist(h.ecs.Player.Pos); math.Abs(d-want) > 1e-9 {
		t.Errorf("distance = %v, want %v", d, want)
	}
}

func TestKnockbackOverridesPursuit(t *testing.T) {
	h := newHarness(t)
	e := h.enemyAt(100, 0)
	e.Knockback.Velocity = types.Vec2{X: 300}
	h.movement.Update(0.1)
	if d := e.Pos.Dist(h.ecs.Player.Pos); d <= 100 {
		t.Errorf("knocked enemy moved closer: %v", d)
	}
	if e.Knockback.Velocity.X >= 300 {
		t.Error("knockback should decay")
	}
	for i := 0; i < 200; i++ {
		h.movement.Update(0.1)
	}
	if e.Knockback.Active() {
		t.Error("knockback should wear off")
	}
}
