package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) { c.got = append(c.got, e) }

func TestDispatcher_DeliversOnlySubscribedKinds(t *testing.T) {
	d := NewDispatcher()
	kills := &countingListener{}
	pickups := &countingListener{}
	d.Subscribe(EnemyKilled, kills)
	d.Subscribe(XPPickup, pickups)

	d.Emit(EnemyKilled, EnemyKilledData{EnemyID: 3, XPValue: 7, DropsXP: true})
	d.Emit(EnemyKilled, EnemyKilledData{EnemyID: 4})
	d.Emit(XPPickup, XPPickupData{OrbID: 9, Value: 7})
	d.Emit(PlayerDeath, nil)

	if len(kills.got) != 2 {
		t.Fatalf("kill listener got %d events, want 2", len(kills.got))
	}
	data, ok := kills.got[0].Data.(EnemyKilledData)
	if !ok || data.EnemyID != 3 || data.XPValue != 7 {
		t.Errorf("unexpected payload: %#v", kills.got[0].Data)
	}
	if len(pickups.got) != 1 {
		t.Errorf("pickup listener got %d events, want 1", len(pickups.got))
	}
}

func TestDispatcher_UnsubscribeFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	cancel := d.SubscribeFunc(EnemyPushed, func(Event) { calls++ })

	d.Emit(EnemyPushed, EnemyPushedData{})
	cancel()
	d.Emit(EnemyPushed, EnemyPushedData{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(LevelUp, l)
	d.Unsubscribe(LevelUp, l)
	d.Emit(LevelUp, LevelUpData{Level: 2})

	if len(l.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(l.got))
	}
}

func TestDispatcher_SubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := 0
	d.SubscribeFunc(WaveStarted, func(Event) {
		d.SubscribeFunc(WaveStarted, func(Event) { late++ })
	})

	d.Emit(WaveStarted, WaveStartedData{Wave: 1})
	if late != 0 {
		t.Errorf("listener added during dispatch received the same event")
	}
	d.Emit(WaveStarted, WaveStartedData{Wave: 2})
	if late != 1 {
		t.Errorf("late listener calls = %d, want 1", late)
	}
}

func TestEventType_String(t *testing.T) {
	if EnemyKilled.String() != "enemy_killed" {
		t.Errorf("EnemyKilled.String() = %q", EnemyKilled.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("out of range type should be unknown")
	}
}
