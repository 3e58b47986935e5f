package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the simulation's audio cues.
type SoundKind int

const (
	SoundLightChange SoundKind = iota
	SoundPause
)

// AudioSystem manages the procedural sound cues.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. Failure is non-fatal; every
// PlaySound becomes a no-op.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated cue, fire and forget.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// ---- Sample helpers ------------------------------------------------------

func makeBuf(n int) []byte { return make([]byte, n*8) }

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundLightChange:
		return genLightChange()
	case SoundPause:
		return genPause()
	}
	return nil
}

// genLightChange is a short two-tone chirp.
func genLightChange() []byte {
	n := sampleRate * 90 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.25)
		freq := 880.0
		if p > 0.5 {
			freq = 1175.0
		}
		s := math.Sin(2*math.Pi*freq*t) * env * 0.22
		putStereoF32(buf, i, s)
	}
	return buf
}

// genPause is a soft low click.
func genPause() []byte {
	n := sampleRate * 45 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.6, 0.0, 0.2)
		s := math.Sin(2*math.Pi*330*t) * env * 0.25
		putStereoF32(buf, i, s)
	}
	return buf
}
