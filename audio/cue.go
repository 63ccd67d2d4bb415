package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names a short feedback sound
type Cue uint8

const (
	CueClick Cue = iota
	CueSpawn
	CueToggle
	CueError
	cueCount
)

var cueNames = [cueCount]string{"click", "spawn", "toggle", "error"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

const cueAttack = 2 * time.Millisecond

// cueNotes lists the notes of each cue, played in sequence
var cueNotes = [cueCount][]note{
	CueClick: {
		{partials: []partial{{880, 1, sine}}, length: 40 * time.Millisecond, release: 20 * time.Millisecond},
	},
	// Rising fifth
	CueSpawn: {
		{partials: []partial{{660, 1, sine}}, length: 60 * time.Millisecond, release: 30 * time.Millisecond},
		{partials: []partial{{990, 1, sine}}, length: 60 * time.Millisecond, release: 30 * time.Millisecond},
	},
	CueToggle: {
		{partials: []partial{{440, 0.6, square}, {880, 0.4, sine}}, length: 30 * time.Millisecond, release: 15 * time.Millisecond},
	},
	CueError: {
		{partials: []partial{{110, 1, saw}}, length: 120 * time.Millisecond, release: 40 * time.Millisecond},
	},
}

// Build returns a finite streamer for c, or nil for an unknown cue
func Build(c Cue, rate beep.SampleRate) beep.Streamer {
	if c >= cueCount {
		return nil
	}
	notes := cueNotes[c]
	if len(notes) == 1 {
		return newTone(notes[0], rate)
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newTone(n, rate)
	}
	return beep.Seq(parts...)
}
