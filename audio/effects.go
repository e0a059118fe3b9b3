package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/trajectory/parameter"
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func saw(p float64) float64 { return 2*p - 1 }

// tone is a waveform gliding linearly from fromHz to toHz over a fixed number of samples
type tone struct {
	wave   waveform
	fromHz float64
	toHz   float64
	rate   beep.SampleRate
	total  int
	pos    int
	phase  float64
}

func newTone(wave waveform, fromHz, toHz float64, length time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		wave:   wave,
		fromHz: fromHz,
		toHz:   toHz,
		rate:   rate,
		total:  rate.N(length),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := min(len(samples), t.total-t.pos)
	for i := range n {
		v := t.wave(t.phase)
		samples[i] = [2]float64{v, v}

		hz := t.fromHz + (t.toHz-t.fromHz)*float64(t.pos)/float64(t.total)
		t.phase += hz / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// ramp fades a stream in over attack samples and out over the last release samples
type ramp struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func (r *ramp) gain() float64 {
	if r.attack > 0 && r.pos < r.attack {
		return float64(r.pos) / float64(r.attack)
	}
	if left := r.total - r.pos; r.release > 0 && left < r.release {
		return math.Max(0, float64(left)/float64(r.release))
	}
	return 1
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.src.Stream(samples)
	for i := range n {
		g := r.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.src.Err() }

// note is one shaped segment of a cue
type note struct {
	wave    waveform
	fromHz  float64
	toHz    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	return &ramp{
		src:     newTone(n.wave, n.fromHz, n.toHz, n.length, rate),
		total:   rate.N(n.length),
		attack:  rate.N(n.attack),
		release: rate.N(n.release),
	}
}

// cueNotes lists the notes each cue plays in sequence
var cueNotes = map[SoundType][]note{
	SoundLaunch: {
		{sine, parameter.LaunchSoundFromHz, parameter.LaunchSoundToHz,
			parameter.LaunchSoundDuration, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease},
	},
	SoundScore: {
		{sine, parameter.ScoreSoundNote1Hz, parameter.ScoreSoundNote1Hz,
			parameter.ScoreSoundNote1Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote1Release},
		{sine, parameter.ScoreSoundNote2Hz, parameter.ScoreSoundNote2Hz,
			parameter.ScoreSoundNote2Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote2Release},
	},
	SoundMiss: {
		{saw, parameter.MissSoundFromHz, parameter.MissSoundToHz,
			parameter.MissSoundDuration, parameter.MissSoundAttack, parameter.MissSoundRelease},
	},
}

// cueLength is the total play time of a cue
func cueLength(st SoundType) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[st] {
		d += n.length
	}
	return d
}

// scaled applies a linear gain through effects.Volume; zero or less is silent
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// GetSoundEffect builds a fresh streamer for soundType at its configured volume
// Returns nil for an unknown type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	notes, ok := cueNotes[soundType]
	if !ok {
		return nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}

	return scaled(beep.Seq(parts...), cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}
