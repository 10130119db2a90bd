// Package audio plays the game's sound effects through beep's speaker.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays sound effects. Calls never block and never fail.
type Player interface {
	Bling()
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Bling() {}
func (Nop) Close() {}

// Speaker plays through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker opens the audio device. When that fails the game runs silent,
// so the error is logged and a Nop is returned.
func NewSpeaker() Player {
	s := &Speaker{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		log.Printf("audio initialization failed: %v", err)
		return Nop{}
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s
}

func (s *Speaker) Bling() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, err := NewBling(sampleRate)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Toggle wraps a Player with a mute switch.
type Toggle struct {
	Player Player
	Muted  bool
}

func (t *Toggle) Bling() {
	if t.Muted || t.Player == nil {
		return
	}
	t.Player.Bling()
}

func (t *Toggle) Close() {
	if t.Player != nil {
		t.Player.Close()
	}
}
