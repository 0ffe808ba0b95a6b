// internal/system/wave.go
package system

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// WaveSystem — директор волн. Размер волны растёт, пауза между волнами
// сокращается до нижней границы.
type WaveSystem struct {
	ecs    *entity.ECS
	clock  *clock.Scheduler
	bus    *event.Dispatcher
	rng    utils.Random
	waves  defs.WaveTuning
	enemy  defs.EnemyTuning
	arena  defs.ArenaTuning
	logger *log.Logger

	WaveCount   int
	SpawnAmount int
	next        *clock.Timer
	stopped     bool
}

func NewWaveSystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, rng utils.Random, waves defs.WaveTuning, enemy defs.EnemyTuning, arena defs.ArenaTuning, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:         ecs,
		clock:       sched,
		bus:         bus,
		rng:         rng,
		waves:       waves,
		enemy:       enemy,
		arena:       arena,
		logger:      logger,
		SpawnAmount: waves.InitialSpawnAmount,
	}
}

// Start планирует первую волну.
func (s *WaveSystem) Start() {
	s.stopped = false
	s.next = s.clock.After(s.waves.FirstDelay, s.StartWave)
}

// Stop отменяет следующую волну. Уже запланированные появления врагов тоже не сработают.
func (s *WaveSystem) Stop() {
	s.stopped = true
	s.next.Cancel()
}

// NextDelay — пауза после волны с номером waveCount (считая с единицы).
func (s *WaveSystem) NextDelay(waveCount int) time.Duration {
	return max(s.waves.BaseDelay-time.Duration(waveCount)*s.waves.DelayStep, s.waves.DelayFloor)
}

// StartWave выпускает текущую волну и планирует следующую.
func (s *WaveSystem) StartWave() {
	if s.stopped {
		return
	}
	amount := s.SpawnAmount
	for i := 0; i < amount; i++ {
		s.clock.After(time.Duration(i)*s.waves.SpawnStagger, func() {
			if !s.stopped {
				s.SpawnEnemy()
			}
		})
	}
	s.WaveCount++
	s.SpawnAmount += s.waves.SpawnIncrement
	s.logger.Info("wave started", "wave", s.WaveCount, "enemies", amount)
	s.bus.Emit(event.WaveStarted, event.WaveStartedData{Wave: s.WaveCount, SpawnAmount: amount})
	s.next = s.clock.After(s.NextDelay(s.WaveCount), s.StartWave)
}

// SpawnEnemy создаёт врага в случайной точке появления.
func (s *WaveSystem) SpawnEnemy() *component.Enemy {
	return s.SpawnEnemyAt(s.SpawnPoint())
}

// SpawnEnemyAt создаёт врага в заданной точке.
func (s *WaveSystem) SpawnEnemyAt(pos types.Vec2) *component.Enemy {
	e := &component.Enemy{
		Pos:           pos,
		Radius:        s.enemy.Radius,
		Speed:         s.enemy.Speed,
		OriginalSpeed: s.enemy.Speed,
		HP:            s.enemy.HP,
		MaxHP:         s.enemy.HP,
		XPValue:       utils.IntRange(s.rng, s.enemy.XPMin, s.enemy.XPMax),
	}
	s.ecs.AddEnemy(e)
	return e
}

// SpawnPoint выбирает точку за краем арены. Если игрок ближе минимальной дистанции,
// точка выталкивается от него по той же прямой.
func (s *WaveSystem) SpawnPoint() types.Vec2 {
	m := s.waves.SpawnMargin
	w, h := s.arena.Width, s.arena.Height
	var pos types.Vec2
	switch s.rng.Intn(4) {
	case 0: // верх
		pos = types.Vec2{X: utils.FloatRange(s.rng, 0, w), Y: -m}
	case 1: // низ
		pos = types.Vec2{X: utils.FloatRange(s.rng, 0, w), Y: h + m}
	case 2: // лево
		pos = types.Vec2{X: -m, Y: utils.FloatRange(s.rng, 0, h)}
	default: // право
		pos = types.Vec2{X: w + m, Y: utils.FloatRange(s.rng, 0, h)}
	}
	p := s.ecs.Player
	if p == nil {
		return pos
	}
	minDist := p.AuraRange * s.waves.MinDistanceFactor
	if p.Pos.Dist(pos) >= minDist {
		return pos
	}
	dir := pos.Sub(p.Pos).Normalize()
	if dir.IsZero() {
		angle := utils.FloatRange(s.rng, 0, 2*math.Pi)
		dir = types.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return p.Pos.Add(dir.Scale(minDist * s.waves.PushOutFactor))
}
