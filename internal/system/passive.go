package system

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// Charge — общий автомат заряжаемых пассивок:
// ACCUMULATING → READY → (Consume) → ACCUMULATING с нуля.
type Charge struct {
	Count     int
	Threshold int
}

// Add прибавляет n и сообщает, стал ли заряд готов именно сейчас.
func (c *Charge) Add(n int) bool {
	if c.Ready() {
		return false
	}
	c.Count = min(c.Count+n, c.Threshold)
	return c.Ready()
}

func (c *Charge) Ready() bool {
	return c.Threshold > 0 && c.Count >= c.Threshold
}

// Percent — прогресс в [0, 1] для индикатора.
func (c *Charge) Percent() float64 {
	return utils.Percent(float64(c.Count), float64(c.Threshold))
}

// Consume тратит готовый заряд.
func (c *Charge) Consume() bool {
	if !c.Ready() {
		return false
	}
	c.Count = 0
	return true
}

// Passive — поведение пассивки класса. Выбирается один раз по defs.PassiveKey.
type Passive interface {
	Key() defs.PassiveKey
	// Activate вызывается один раз в начале забега.
	Activate()
	// Trigger — осознанное нажатие игрока. Без готового заряда ничего не делает.
	Trigger() bool
	// Charge возвращает nil у пассивок без заряда.
	Charge() *Charge
}

// PassiveDeps — всё, до чего пассивкам разрешено дотягиваться.
type PassiveDeps struct {
	ECS       *entity.ECS
	Clock     *clock.Scheduler
	Bus       *event.Dispatcher
	Proximity *Proximity
	Damage    *DamageSystem
	Weapons   *WeaponSystem
	Allies    *AllySystem
	RNG       utils.Random
	Weapon    defs.WeaponKey
	Aim       func() types.Vec2
	Logger    *log.Logger

	Alchemist   defs.AlchemistTuning
	Gravedigger defs.GravediggerTuning
	Sentinel    defs.SentinelTuning
}

// NewPassive разрешает ключ в конкретное поведение.
func NewPassive(key defs.PassiveKey, deps PassiveDeps) (Passive, error) {
	switch key {
	case defs.PassiveChargeBurst:
		return &chargeBurst{deps: deps, charge: Charge{Threshold: deps.Alchemist.ChargeThreshold}}, nil
	case defs.PassiveSoulHarvest:
		return &soulHarvest{deps: deps, charge: Charge{Threshold: deps.Gravedigger.SoulThreshold}}, nil
	case defs.PassiveEcho:
		return &echo{deps: deps}, nil
	}
	return nil, fmt.Errorf("%w: %q", defs.ErrUnknownPassive, key)
}

// PassiveSystem держит выбранную пассивку. Неизвестный ключ даёт пустую систему:
// предупреждение в лог, забег продолжается без пассивки.
type PassiveSystem struct {
	passive Passive
	bus     *event.Dispatcher
}

func NewPassiveSystem(key defs.PassiveKey, deps PassiveDeps) *PassiveSystem {
	p, err := NewPassive(key, deps)
	if err != nil {
		deps.Logger.Warn("passive skipped", "err", err)
	}
	return &PassiveSystem{passive: p, bus: deps.Bus}
}

func (s *PassiveSystem) Activate() {
	if s.passive != nil {
		s.passive.Activate()
	}
}

// Trigger передаёт нажатие игрока пассивке.
func (s *PassiveSystem) Trigger() bool {
	if s.passive == nil || !s.passive.Trigger() {
		return false
	}
	s.bus.Emit(event.PassiveActivated, event.PassiveData{Passive: string(s.passive.Key())})
	return true
}

// Percent — прогресс заряда; 0 у пассивок без заряда.
func (s *PassiveSystem) Percent() float64 {
	if c := s.charge(); c != nil {
		return c.Percent()
	}
	return 0
}

func (s *PassiveSystem) Ready() bool {
	c := s.charge()
	return c != nil && c.Ready()
}

// HasCharge сообщает, есть ли у пассивки шкала заряда.
func (s *PassiveSystem) HasCharge() bool {
	return s.charge() != nil
}

func (s *PassiveSystem) Key() defs.PassiveKey {
	if s.passive == nil {
		return ""
	}
	return s.passive.Key()
}

// Passive даёт доступ к конкретному поведению (слою отрисовки нужен радиус эха).
func (s *PassiveSystem) Passive() Passive {
	return s.passive
}

func (s *PassiveSystem) charge() *Charge {
	if s.passive == nil {
		return nil
	}
	return s.passive.Charge()
}

func emitReady(bus *event.Dispatcher, key defs.PassiveKey, pos types.Vec2, label string) {
	bus.Emit(event.PassiveReady, event.PassiveData{Passive: string(key)})
	bus.Emit(event.FloatingText, event.FloatingTextData{Text: label, Position: pos, Color: TextColorAbility})
}

func playerPos(ecs *entity.ECS) types.Vec2 {
	if ecs.Player == nil {
		return types.Vec2{}
	}
	return ecs.Player.Pos
}

// ─── Алхимик: заряд и залп ───

type chargeBurst struct {
	deps   PassiveDeps
	charge Charge
}

func (p *chargeBurst) Key() defs.PassiveKey { return defs.PassiveChargeBurst }
func (p *chargeBurst) Charge() *Charge      { return &p.charge }

func (p *chargeBurst) Activate() {
	p.deps.Bus.SubscribeFunc(event.EnemyKilled, func(e event.Event) {
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok || !data.DropsXP {
			return
		}
		if p.charge.Add(1) {
			emitReady(p.deps.Bus, p.Key(), playerPos(p.deps.ECS), "BURST READY")
		}
	})
	// Похмелье: подбор опыта с шансом сбрасывает перезарядки.
	p.deps.Bus.SubscribeFunc(event.XPPickup, func(event.Event) {
		if utils.Chance(p.deps.RNG, p.deps.Alchemist.CooldownResetChance) {
			p.deps.Weapons.ResetAllCooldowns()
			p.deps.Logger.Debug("cooldowns reset on pickup")
		}
	})
}

func (p *chargeBurst) Trigger() bool {
	if !p.charge.Consume() {
		return false
	}
	p.deps.Weapons.ResetAllCooldowns()
	p.deps.Bus.Emit(event.FloatingText, event.FloatingTextData{
		Text: "CHARGE BURST!", Position: playerPos(p.deps.ECS), Color: TextColorAbility,
	})
	shots := max(1, p.deps.Alchemist.BurstShots)
	p.deps.Weapons.Fire(p.deps.Weapon, p.deps.Aim())
	for i := 1; i < shots; i++ {
		p.deps.Clock.After(time.Duration(i)*p.deps.Alchemist.BurstStagger, func() {
			p.deps.Weapons.Fire(p.deps.Weapon, p.deps.Aim())
		})
	}
	return true
}

// ─── Могильщик: жатва душ ───

type soulHarvest struct {
	deps   PassiveDeps
	charge Charge
}

func (p *soulHarvest) Key() defs.PassiveKey { return defs.PassiveSoulHarvest }
func (p *soulHarvest) Charge() *Charge      { return &p.charge }

func (p *soulHarvest) Activate() {
	if pl := p.deps.ECS.Player; pl != nil {
		t := p.deps.Gravedigger
		pl.Speed *= t.SpeedPenalty
		pl.SummonDurationMultiplier *= t.SummonDurationMultiplier
		pl.SummonCountBonus += t.SummonCountBonus
	}
	p.deps.Bus.SubscribeFunc(event.EnemyKilled, func(e event.Event) {
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok || !data.DropsXP {
			return
		}
		if p.charge.Add(1) {
			emitReady(p.deps.Bus, p.Key(), playerPos(p.deps.ECS), "SOULS READY")
		}
	})
}

// Trigger превращает всех помеченных живых врагов в призраков.
func (p *soulHarvest) Trigger() bool {
	if !p.charge.Consume() {
		return false
	}
	marked := p.deps.Proximity.MarkedEnemies()
	for _, e := range marked {
		pos := e.Pos
		if p.deps.Damage.Convert(e) {
			p.deps.Allies.Summon(defs.AllyGhost, pos)
		}
	}
	p.deps.Logger.Debug("soul harvest", "ghosts", len(marked))
	p.deps.Bus.Emit(event.FloatingText, event.FloatingTextData{
		Text: "SOUL HARVEST!", Position: playerPos(p.deps.ECS), Color: TextColorAbility,
	})
	return true
}

// ─── Страж: эхо ───

type echo struct {
	deps   PassiveDeps
	pushes int
}

func (p *echo) Key() defs.PassiveKey { return defs.PassiveEcho }
func (p *echo) Charge() *Charge      { return nil }
func (p *echo) Trigger() bool        { return false }

func (p *echo) Activate() {
	if pl := p.deps.ECS.Player; pl != nil {
		pl.KnockbackBonus = p.deps.Sentinel.KnockbackBonus
		pl.PushDamageBonus += p.deps.Sentinel.PushDamageBonus
	}
	p.deps.Bus.SubscribeFunc(event.EnemyPushed, func(event.Event) { p.pushes++ })
}

// Radius — радиус кольца-индикатора вокруг игрока.
func (p *echo) Radius() float64 { return p.deps.Sentinel.EchoRadius }

// Pushes — сколько врагов отброшено за забег.
func (p *echo) Pushes() int { return p.pushes }

// EchoInfo возвращает радиус индикатора и число толчков, если пассивка — эхо.
func (s *PassiveSystem) EchoInfo() (radius float64, pushes int, ok bool) {
	e, isEcho := s.passive.(*echo)
	if !isEcho {
		return 0, 0, false
	}
	return e.Radius(), e.Pushes(), true
}
