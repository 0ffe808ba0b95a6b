// internal/sfx/sound.go
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"chaos-rush/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue — короткий синусоидальный сигнал на событие.
type Cue struct {
	Freq     int
	Duration time.Duration
	Volume   float64 // 0..1
}

// Cues — звуковые сигналы по типам событий.
var Cues = map[event.EventType]Cue{
	event.EnemyKilled:      {Freq: 660, Duration: 40 * time.Millisecond, Volume: 0.25},
	event.XPPickup:         {Freq: 990, Duration: 30 * time.Millisecond, Volume: 0.2},
	event.PlayerHit:        {Freq: 180, Duration: 120 * time.Millisecond, Volume: 0.5},
	event.LevelUp:          {Freq: 880, Duration: 200 * time.Millisecond, Volume: 0.4},
	event.PassiveActivated: {Freq: 520, Duration: 250 * time.Millisecond, Volume: 0.4},
	event.PlayerDeath:      {Freq: 110, Duration: 600 * time.Millisecond, Volume: 0.6},
}

// SoundManager проигрывает сигналы через общий микшер.
// Без Initialize все вызовы Play молча ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
	unsubscribe []func()
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, logger: logger}
}

// Initialize открывает аудиоустройство. Ошибка не фатальна: игра идёт без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Attach подписывает менеджер на события забега. Прежние подписки снимаются.
func (sm *SoundManager) Attach(bus *event.Dispatcher) {
	sm.Detach()
	for t := range Cues {
		sm.unsubscribe = append(sm.unsubscribe, bus.Subscribe(t, sm))
	}
}

func (sm *SoundManager) Detach() {
	for _, u := range sm.unsubscribe {
		u()
	}
	sm.unsubscribe = nil
}

// OnEvent проигрывает сигнал, назначенный типу события.
func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := Cues[e.Type]; ok {
		sm.Play(cue)
	}
}

func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, float64(cue.Freq))
	if err != nil {
		sm.logger.Warn("tone skipped", "freq", cue.Freq, "err", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(beep.Take(sampleRate.N(cue.Duration), tone), cue.Volume))
	speaker.Unlock()
}

// Close гасит микшер и закрывает устройство.
func (sm *SoundManager) Close() {
	sm.Detach()
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
