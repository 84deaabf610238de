package cli

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player pushes rendered samples to the host audio device. The device
// pulls: oto calls Read from its own goroutine, and the fill callback
// renders exactly the requested number of samples, so emulation speed
// is slaved to the sound card clock.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	fill   func([]float32) error

	sampleBuf []float32
}

// NewPlayer opens the audio device at the given sample rate. fill is
// called from the audio goroutine to render samples.
func NewPlayer(sampleRate int, fill func([]float32) error) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	p := &Player{
		ctx:       ctx,
		fill:      fill,
		sampleBuf: make([]float32, 4096),
	}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read implements io.Reader for oto. Each sample is one float32,
// little endian.
func (p *Player) Read(buf []byte) (int, error) {
	numSamples := len(buf) / 4
	if len(p.sampleBuf) < numSamples {
		p.sampleBuf = make([]float32, numSamples)
	}
	samples := p.sampleBuf[:numSamples]

	if err := p.fill(samples); err != nil {
		return 0, err
	}

	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	return numSamples * 4, nil
}

// Start begins playback.
func (p *Player) Start() {
	p.player.Play()
}

// Close stops playback and releases the device.
func (p *Player) Close() error {
	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return fmt.Errorf("failed to close audio player: %w", err)
		}
		p.player = nil
	}
	return nil
}
