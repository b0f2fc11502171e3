package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// soundtrackVolume matches the original mix: music well under the effects.
const soundtrackVolume = 0.3

// Sound identifies one of the fixed sound effects.
type Sound int

const (
	SoundEat Sound = iota
	SoundDie
	SoundGameOver
	SoundTrack
)

var soundFiles = map[Sound]string{
	SoundEat:      "eat.wav",
	SoundDie:      "die.wav",
	SoundGameOver: "gameover.wav",
	SoundTrack:    "soundtrack.wav",
}

// Mixer abstracts playback so game logic can run without an audio device.
type Mixer interface {
	// Play plays a sound once from the start.
	Play(s Sound)
	// Loop plays a sound on repeat, ramping volume from zero to volume
	// over fade.
	Loop(s Sound, volume float64, fade time.Duration)
	// Stop halts a looping sound.
	Stop(s Sound)
	// Duration reports the sound's length.
	Duration(s Sound) time.Duration
	// Step advances fades. Called once per game tick.
	Step()
}

type track struct {
	pcm      []byte
	duration time.Duration
}

// WavMixer plays WAV sound effects through an ebiten audio context. Only
// one looping sound plays at a time, which is all this game needs.
type WavMixer struct {
	ctx    *audio.Context
	tps    int
	tracks map[Sound]track

	loop       *audio.Player
	loopTarget float64
	loopStep   float64 // volume added per tick while fading in
}

// NewWavMixer decodes every sound in dir and opens the audio device. A
// missing or malformed file is fatal to startup.
func NewWavMixer(dir string, tps int) (*WavMixer, error) {
	m := &WavMixer{
		ctx:    audio.NewContext(sampleRate),
		tps:    tps,
		tracks: make(map[Sound]track, len(soundFiles)),
	}
	for s, name := range soundFiles {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load sound %s: %w (run `antpicnic genassets` first)", path, err)
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode sound %s: %w", path, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read sound %s: %w", path, err)
		}
		// Decoded streams are 16-bit stereo: four bytes per sample frame.
		d := time.Duration(len(pcm)) * time.Second / (4 * sampleRate)
		m.tracks[s] = track{pcm: pcm, duration: d}
	}
	return m, nil
}

// Play plays s once, overlapping with anything already playing.
func (m *WavMixer) Play(s Sound) {
	t, ok := m.tracks[s]
	if !ok {
		return
	}
	m.ctx.NewPlayerFromBytes(t.pcm).Play()
}

// Loop starts s on infinite repeat with a linear fade-in.
func (m *WavMixer) Loop(s Sound, volume float64, fade time.Duration) {
	t, ok := m.tracks[s]
	if !ok {
		return
	}
	m.Stop(s)

	src := audio.NewInfiniteLoop(bytes.NewReader(t.pcm), int64(len(t.pcm)))
	p, err := m.ctx.NewPlayer(src)
	if err != nil {
		return
	}
	m.loop = p
	m.loopTarget = volume
	if ticks := fade.Seconds() * float64(m.tps); ticks >= 1 {
		p.SetVolume(0)
		m.loopStep = volume / ticks
	} else {
		p.SetVolume(volume)
		m.loopStep = 0
	}
	p.Play()
}

// Stop halts the looping sound, if any.
func (m *WavMixer) Stop(Sound) {
	if m.loop == nil {
		return
	}
	m.loop.Pause()
	_ = m.loop.Close()
	m.loop = nil
	m.loopStep = 0
}

// Duration reports the decoded length of s.
func (m *WavMixer) Duration(s Sound) time.Duration {
	return m.tracks[s].duration
}

// Step advances the fade-in by one tick.
func (m *WavMixer) Step() {
	if m.loop == nil || m.loopStep == 0 {
		return
	}
	v := m.loop.Volume() + m.loopStep
	if v >= m.loopTarget {
		v = m.loopTarget
		m.loopStep = 0
	}
	m.loop.SetVolume(v)
}

// SilentMixer discards all playback. It stands in for the real mixer when
// no audio device is wanted and reports zero-length sounds.
type SilentMixer struct{}

func (SilentMixer) Play(Sound)                         {}
func (SilentMixer) Loop(Sound, float64, time.Duration) {}
func (SilentMixer) Stop(Sound)                         {}
func (SilentMixer) Duration(Sound) time.Duration       { return 0 }
func (SilentMixer) Step()                              {}
