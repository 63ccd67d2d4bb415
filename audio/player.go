package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when a Speaker is created with a non-positive rate
const DefaultSampleRate = 44100

// Player plays feedback cues. Implementations must be safe for concurrent use.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop discards every cue
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// Speaker plays cues through the system audio device via one shared mixer
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an unopened speaker; volume is linear in [0,1]
func NewSpeaker(sampleRate int, volume float64) *Speaker {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Speaker{
		rate:   beep.SampleRate(sampleRate),
		volume: min(max(volume, 0), 1),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device and starts the mixer. Safe to call repeatedly.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue in; no-op before Init or after Close
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Build(c, s.rate)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(withGain(st, s.volume))
	speaker.Unlock()
}

// Close stops all sounds and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
