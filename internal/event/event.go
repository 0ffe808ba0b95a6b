// internal/event/event.go
package event

// EventType — тип события. Набор закрыт: новые виды добавляются только сюда.
type EventType int

const (
	// EnemyKilled — враг погиб. Payload: EnemyKilledData
	EnemyKilled EventType = iota
	// XPPickup — игрок подобрал сферу опыта. Payload: XPPickupData
	XPPickup
	// EnemyPushed — враг отброшен колоколом. Payload: EnemyPushedData
	EnemyPushed
	// PlayerHit — игрок получил контактный урон. Payload: PlayerHitData
	PlayerHit
	// PlayerDeath — конец забега. Payload: nil
	PlayerDeath
	// LevelUp — новый уровень. Payload: LevelUpData
	LevelUp
	// UpgradeOffered — мир на паузе, показаны варианты. Payload: UpgradeOfferedData
	UpgradeOffered
	// UpgradeApplied — улучшение применено. Payload: UpgradeAppliedData
	UpgradeApplied
	// WaveStarted — началась волна. Payload: WaveStartedData
	WaveStarted
	// WeaponFired — активное оружие сработало. Payload: WeaponFiredData
	WeaponFired
	// AllySummoned — появился союзник. Payload: AllySummonedData
	AllySummoned
	// PassiveReady — заряд пассивки набран. Payload: PassiveData
	PassiveReady
	// PassiveActivated — пассивка потрачена. Payload: PassiveData
	PassiveActivated
	// FloatingText — всплывающий текст для слоя отрисовки. Payload: FloatingTextData
	FloatingText
)

var typeNames = [...]string{
	EnemyKilled:      "enemy_killed",
	XPPickup:         "xp_pickup",
	EnemyPushed:      "enemy_pushed",
	PlayerHit:        "player_hit",
	PlayerDeath:      "player_death",
	LevelUp:          "level_up",
	UpgradeOffered:   "upgrade_offered",
	UpgradeApplied:   "upgrade_applied",
	WaveStarted:      "wave_started",
	WeaponFired:      "weapon_fired",
	AllySummoned:     "ally_summoned",
	PassiveReady:     "passive_ready",
	PassiveActivated: "passive_activated",
	FloatingText:     "floating_text",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event — структура события
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher — диспетчер событий. Доставка синхронная, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает функцию отписки.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.unsubscribeID(eventType, id) }
}

// SubscribeFunc — подписка функцией.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) func() {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события. Только для сравнимых подписчиков (указателей);
// подписки через SubscribeFunc снимаются возвращённой функцией.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.listener == listener {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) unsubscribeID(eventType EventType, id int) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписки, сделанные во время доставки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{...}).
func (d *Dispatcher) Emit(eventType EventType, data any) {
	d.Dispatch(Event{Type: eventType, Data: data})
}

// Clear удаляет все подписки.
func (d *Dispatcher) Clear() {
	d.listeners = make(map[EventType][]subscription)
}
