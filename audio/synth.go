package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// shape maps a phase in [0,1) to an amplitude in [-1,1]
type shape func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

// partial is one component of a note; gains of a note's partials sum to at most 1
type partial struct {
	freq  float64
	gain  float64
	shape shape
}

// note is a chord of partials with a linear attack and release inside its length
type note struct {
	partials []partial
	length   time.Duration
	release  time.Duration
}

// tone renders one note as a finite stereo stream
type tone struct {
	partials []partial
	phases   []float64
	step     []float64

	pos, total      int
	attack, release int
}

func newTone(n note, rate beep.SampleRate) *tone {
	t := &tone{
		partials: n.partials,
		phases:   make([]float64, len(n.partials)),
		step:     make([]float64, len(n.partials)),
		total:    rate.N(n.length),
		attack:   rate.N(cueAttack),
		release:  rate.N(n.release),
	}
	for i, p := range n.partials {
		t.step[i] = p.freq / float64(rate)
	}
	return t
}

// level is the envelope gain at sample pos
func (t *tone) level(pos int) float64 {
	g := 1.0
	if t.attack > 0 {
		g = min(g, float64(pos)/float64(t.attack))
	}
	if t.release > 0 {
		g = min(g, float64(t.total-pos)/float64(t.release))
	}
	return max(g, 0)
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n = min(len(samples), t.total-t.pos)
	for i := range n {
		var v float64
		for j, p := range t.partials {
			v += p.gain * p.shape(t.phases[j])
			t.phases[j] = math.Mod(t.phases[j]+t.step[j], 1)
		}
		v *= t.level(t.pos)
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// withGain scales s by a linear factor in [0,1]
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: gain - 1}
}
