package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Bling notes, played back to back.
var blingNotes = []float64{1318.51, 1975.53} // E6, B6

const (
	blingNote   = 90 * time.Millisecond
	blingVolume = 0.35
)

// decay fades a stream out linearly over its length.
type decay struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// NewBling builds the short two-note chime played on a pass.
func NewBling(sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(blingNotes))
	for _, freq := range blingNotes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("bling tone %.0fHz: %w", freq, err)
		}
		n := sr.N(blingNote)
		notes = append(notes, &decay{streamer: beep.Take(n, tone), total: n})
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   math.Log2(blingVolume),
	}, nil
}
