package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundPromote
	SoundPlace
	SoundMissile
	SoundCoin
	SoundInvalid
)

const sampleRate = 44100

// AudioManager plays procedurally generated sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager with every effect pre-rendered.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	am.sounds[SoundMove] = generateClick(440, 0.08, 0.3)
	am.sounds[SoundCapture] = generateClick(330, 0.12, 0.5)
	am.sounds[SoundPromote] = generateChord([]float64{392.00, 493.88, 587.33}, 0.35, 0.4)
	am.sounds[SoundPlace] = concat(generateClick(520, 0.05, 0.25), silence(0.03), generateClick(660, 0.06, 0.3))
	am.sounds[SoundMissile] = generateSweep(900, 120, 0.35, 0.45)
	am.sounds[SoundCoin] = concat(generateTone(1320, 0.05, 0.2), generateTone(1760, 0.09, 0.2))
	am.sounds[SoundInvalid] = generateBuzz(150, 0.1, 0.3)
}

// putSample writes one stereo 16-bit frame at index i.
func putSample(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

func frames(duration float64) (int, []byte) {
	n := int(sampleRate * duration)
	return n, make([]byte, n*4)
}

// generateClick creates a short percussive click.
func generateClick(freq, duration, amplitude float64) []byte {
	n, data := frames(duration)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		putSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// generateTone creates a tone with a short attack and linear decay.
func generateTone(freq, duration, amplitude float64) []byte {
	n, data := frames(duration)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		putSample(data, i, math.Sin(2*math.Pi*freq*t)*envelope*amplitude)
	}
	return data
}

// generateSweep glides from one frequency to another with some noise, used
// for the missile strike.
func generateSweep(from, to, duration, amplitude float64) []byte {
	n, data := frames(duration)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := from + (to-from)*progress
		phase += 2 * math.Pi * freq / sampleRate
		noise := math.Sin(float64(i)*1.7) * math.Sin(float64(i)*0.13) * progress
		putSample(data, i, (math.Sin(phase)*0.7+noise*0.5)*(1.0-progress)*amplitude)
	}
	return data
}

// generateBuzz creates a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	n, data := frames(duration)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		putSample(data, i, wave*envelope*amplitude*0.5)
	}
	return data
}

// generateChord mixes freqs with a fade in and out.
func generateChord(freqs []float64, duration, amplitude float64) []byte {
	n, data := frames(duration)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.7 {
			envelope = (1.0 - progress) / 0.3
		}

		sample := 0.0
		for _, f := range freqs {
			sample += math.Sin(2 * math.Pi * f * t)
		}
		putSample(data, i, sample/float64(len(freqs))*envelope*amplitude)
	}
	return data
}

func silence(duration float64) []byte {
	_, data := frames(duration)
	return data
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Play starts a sound. Overlapping plays each get their own player.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
