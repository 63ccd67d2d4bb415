package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				peak = max(peak, v)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

// TestToneLength verifies a note streams exactly its length for every shape
func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for name, sh := range map[string]shape{"sine": sine, "square": square, "saw": saw} {
		n := note{partials: []partial{{440, 1, sh}}, length: 50 * time.Millisecond, release: 10 * time.Millisecond}
		got, peak := drain(t, newTone(n, rate))
		if got != rate.N(50*time.Millisecond) {
			t.Errorf("%s: streamed %d samples, want %d", name, got, rate.N(50*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("%s: peak %f out of range", name, peak)
		}
	}
}

// TestToneEnvelope verifies attack starts silent, sustain is full and release ends near silent
func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Zero frequency square holds at +1 so the samples are the envelope itself
	n := note{partials: []partial{{0, 1, square}}, length: 100 * time.Millisecond, release: 10 * time.Millisecond}
	tn := newTone(n, rate)

	buf := make([][2]float64, 150)
	got, ok := tn.Stream(buf)
	if got != 100 || !ok {
		t.Fatalf("Stream = %d, %v, want 100, true", got, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack start)", buf[0][0])
	}
	if buf[50][0] != 1 || buf[50][1] != 1 {
		t.Errorf("sustain sample = %v, want [1 1]", buf[50])
	}
	if buf[99][0] > 0.2 {
		t.Errorf("last sample = %f, want near 0 (release end)", buf[99][0])
	}
	if got, ok := tn.Stream(buf); got != 0 || ok {
		t.Errorf("exhausted Stream = %d, %v, want 0, false", got, ok)
	}
}

// TestCueTable verifies every note's partial gains stay within full scale
func TestCueTable(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		if len(cueNotes[c]) == 0 {
			t.Errorf("%s: no notes", c)
		}
		for _, n := range cueNotes[c] {
			sum := 0.0
			for _, p := range n.partials {
				sum += p.gain
			}
			if sum > 1 {
				t.Errorf("%s: partial gains sum to %f", c, sum)
			}
		}
	}
}

// TestBuildCues verifies every cue yields a finite, audible, bounded streamer
func TestBuildCues(t *testing.T) {
	rate := beep.SampleRate(DefaultSampleRate)
	for c := Cue(0); c < cueCount; c++ {
		s := Build(c, rate)
		if s == nil {
			t.Fatalf("Build(%s) = nil", c)
		}
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("%s: no samples", c)
		}
		if peak == 0 || peak > 1.01 {
			t.Errorf("%s: peak %f", c, peak)
		}
	}
	if Build(cueCount, rate) != nil {
		t.Error("Build of unknown cue returned a streamer")
	}
	if Cue(200).String() != "unknown" {
		t.Errorf("String() = %q", Cue(200).String())
	}
}

// TestSpeakerBeforeInit verifies Play and Close are safe without a device
func TestSpeakerBeforeInit(t *testing.T) {
	s := NewSpeaker(0, 2)
	if s.rate != DefaultSampleRate {
		t.Errorf("rate = %d, want default", s.rate)
	}
	if s.volume != 1 {
		t.Errorf("volume = %f, want clamped to 1", s.volume)
	}
	s.Play(CueClick)
	s.Close()

	var p Player = Nop{}
	p.Play(CueError)
	p.Close()
}
