package system

import (
	"testing"

	"chaos-rush/internal/component"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

func TestEnemiesInRadius(t *testing.T) {
	h := newHarness(t)
	near := h.enemyAt(50, 0)
	edge := h.enemyAt(0, 100)
	h.enemyAt(200, 0)
	dead := h.enemyAt(10, 0)
	dead.Lifecycle = component.Dying

	got := h.proximity.EnemiesInRadius(h.ecs.Player.Pos, 100)
	if len(got) != 2 {
		t.Fatalf("got %d enemies, want 2", len(got))
	}
	if got[0] != near || got[1] != edge {
		t.Errorf("want [near edge] sorted by id, got ids %d %d", got[0].ID, got[1].ID)
	}
}

func TestSnapshotSurvivesKillsDuringIteration(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 5; i++ {
		h.enemyAt(float64(i*5), 0)
	}
	visited := 0
	for _, e := range h.proximity.EnemiesInRadius(h.ecs.Player.Pos, 100) {
		visited++
		h.damage.ApplyDamage(e, 1000)
		h.advance(0)
	}
	if visited != 5 {
		t.Errorf("visited %d, want 5", visited)
	}
	if n := h.rec.count(event.EnemyKilled); n != 5 {
		t.Errorf("deaths = %d, want 5", n)
	}
}

func TestNearestEnemy(t *testing.T) {
	h := newHarness(t)
	a := h.enemyAt(30, 0)
	b := h.enemyAt(-30, 0)
	h.enemyAt(60, 0)

	if got := h.proximity.NearestEnemy(h.ecs.Player.Pos, 0); got != a {
		t.Errorf("tie should go to the lower id, got %d want %d (other %d)", got.ID, a.ID, b.ID)
	}
	if got := h.proximity.NearestEnemy(h.ecs.Player.Pos, 10); got != nil {
		t.Errorf("nothing within 10, got %d", got.ID)
	}
}

func TestOverlaps(t *testing.T) {
	if !Overlaps(types.Vec2{}, 5, types.Vec2{X: 10}, 5) {
		t.Error("touching circles overlap")
	}
	if Overlaps(types.Vec2{}, 5, types.Vec2{X: 10.1}, 5) {
		t.Error("separated circles do not overlap")
	}
}
