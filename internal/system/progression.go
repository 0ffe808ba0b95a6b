package system

import (
	"math"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/utils"
)

// ProgressionSystem начисляет опыт, повышает уровень и ведёт выбор улучшений:
// RUNNING → (уровень) → SELECTING → (выбор) → RUNNING.
//
// Первый уровень забега молча выдаёт базовое улучшение. Каждый следующий ставит
// в очередь один выбор; выборы открываются по одному.
type ProgressionSystem struct {
	ecs      *entity.ECS
	bus      *event.Dispatcher
	rng      utils.Random
	tuning   defs.ProgressionTuning
	upgrades []defs.UpgradeDefinition
	logger   *log.Logger

	pending   int
	offered   []defs.UpgradeDefinition
	entries   int
	selecting bool
}

func NewProgressionSystem(ecs *entity.ECS, bus *event.Dispatcher, rng utils.Random, tuning defs.ProgressionTuning, upgrades []defs.UpgradeDefinition, logger *log.Logger) *ProgressionSystem {
	s := &ProgressionSystem{
		ecs:      ecs,
		bus:      bus,
		rng:      rng,
		tuning:   tuning,
		upgrades: upgrades,
		logger:   logger,
	}
	bus.Subscribe(event.XPPickup, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.XPPickupData); ok && e.Type == event.XPPickup {
		s.GainXP(data.Value)
	}
}

// GainXP прибавляет опыт и повышает уровень столько раз, сколько порогов пройдено.
// Остаток переносится, поэтому итог не зависит от того, пришёл опыт одной суммой или частями.
func (s *ProgressionSystem) GainXP(amount int) {
	p := s.ecs.Player
	if p == nil || amount <= 0 {
		return
	}
	p.XP += amount
	for p.XP >= p.XPToNext {
		s.levelUp()
	}
}

func (s *ProgressionSystem) levelUp() {
	p := s.ecs.Player
	p.XP -= p.XPToNext
	p.Level++
	p.XPToNext = max(1, int(math.Floor(float64(p.XPToNext)*s.tuning.XPGrowth)))
	s.entries++
	s.logger.Info("level up", "level", p.Level, "xp", p.XP, "next", p.XPToNext)
	s.bus.Emit(event.LevelUp, event.LevelUpData{Level: p.Level, XP: p.XP, XPToNext: p.XPToNext})
	s.bus.Emit(event.FloatingText, event.FloatingTextData{Text: "LEVEL UP!", Position: p.Pos, Color: TextColorLevel})

	if !p.BaselineGranted && s.tuning.BaselineUpgrade != "" {
		p.BaselineGranted = true
		s.grantBaseline()
		return
	}
	s.pending++
	if !s.selecting {
		s.openNext()
	}
}

func (s *ProgressionSystem) grantBaseline() {
	u, err := defs.FindUpgrade(s.upgrades, s.tuning.BaselineUpgrade)
	if err != nil {
		s.logger.Warn("baseline upgrade skipped", "err", err)
		return
	}
	s.apply(u, true)
}

// openNext предлагает до ChoiceCount разных подходящих улучшений.
// Если подходящих нет, выбор пропускается.
func (s *ProgressionSystem) openNext() {
	for s.pending > 0 {
		eligible := s.Eligible()
		if len(eligible) == 0 {
			s.logger.Warn("no eligible upgrades, skipping selection", "level", s.ecs.Player.Level)
			s.pending--
			continue
		}
		picks := utils.Sample(s.rng, len(eligible), s.tuning.ChoiceCount)
		s.offered = make([]defs.UpgradeDefinition, 0, len(picks))
		keys := make([]string, 0, len(picks))
		for _, i := range picks {
			s.offered = append(s.offered, eligible[i])
			keys = append(keys, eligible[i].Key)
		}
		s.selecting = true
		s.bus.Emit(event.UpgradeOffered, event.UpgradeOfferedData{Level: s.ecs.Player.Level, Choices: keys})
		return
	}
	s.selecting = false
	s.offered = nil
}

// Eligible — улучшения, которые можно предложить на текущем уровне.
func (s *ProgressionSystem) Eligible() []defs.UpgradeDefinition {
	level := s.ecs.Player.Level
	var out []defs.UpgradeDefinition
	for _, u := range s.upgrades {
		if u.Eligible(level) {
			out = append(out, u)
		}
	}
	return out
}

// Choose применяет i-й предложенный вариант ровно один раз и открывает следующий выбор,
// если он в очереди. Вне выбора или с неверным индексом ничего не делает.
func (s *ProgressionSystem) Choose(i int) bool {
	if !s.selecting || i < 0 || i >= len(s.offered) {
		return false
	}
	u := s.offered[i]
	s.offered = nil
	s.selecting = false
	s.pending--
	s.apply(u, false)
	s.openNext()
	return true
}

func (s *ProgressionSystem) apply(u defs.UpgradeDefinition, baseline bool) {
	if err := u.Apply(s.ecs.Player); err != nil {
		s.logger.Warn("upgrade partially applied", "key", u.Key, "err", err)
	}
	s.logger.Info("upgrade applied", "key", u.Key, "baseline", baseline)
	s.bus.Emit(event.UpgradeApplied, event.UpgradeAppliedData{Key: u.Key, Text: u.Text, Baseline: baseline})
}

// Selecting — мир стоит на паузе, ждём выбора.
func (s *ProgressionSystem) Selecting() bool {
	return s.selecting
}

// Offered — текущие варианты (копия).
func (s *ProgressionSystem) Offered() []defs.UpgradeDefinition {
	return append([]defs.UpgradeDefinition(nil), s.offered...)
}

// Pending — сколько выборов ещё ждёт, включая открытый.
func (s *ProgressionSystem) Pending() int {
	return s.pending
}

// SelectionEntries — сколько раз за забег открывался выбор улучшения,
// включая первый, выданный автоматически.
func (s *ProgressionSystem) SelectionEntries() int {
	return s.entries
}
