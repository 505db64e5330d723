// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	BUZZER_SAMPLE_RATE = 44100 // Default sample rate, in Hz.
	BUZZER_TONE        = 440   // Default tone, in Hz.
	BUZZER_FRAME_RATE  = 60    // Frames per second.
	BUZZER_AMPLITUDE   = 0x2000
	BUZZER_BIT_DEPTH   = 16
)

// Buzzer records the state of the sound timer as a square wave, and
// encodes it as a WAV file.
type Buzzer struct {
	SampleRate int // Samples per second.
	Tone       int // Frequency of the tone, in Hz.

	Samples []int // Recorded samples.
	phase   int
}

// NewBuzzer creates a buzzer with the default rate and tone.
func NewBuzzer() *Buzzer {
	return &Buzzer{
		SampleRate: BUZZER_SAMPLE_RATE,
		Tone:       BUZZER_TONE,
	}
}

// Reset discards all recorded samples.
func (bz *Buzzer) Reset() {
	bz.Samples = bz.Samples[:0]
	bz.phase = 0
}

// Frame records one 60Hz frame of tone (on) or silence.
func (bz *Buzzer) Frame(on bool) {
	count := bz.SampleRate / BUZZER_FRAME_RATE
	half := bz.SampleRate / (bz.Tone * 2)
	if half == 0 {
		half = 1
	}

	for range count {
		sample := 0
		if on {
			sample = BUZZER_AMPLITUDE
			if (bz.phase/half)%2 != 0 {
				sample = -BUZZER_AMPLITUDE
			}
			bz.phase++
		} else {
			bz.phase = 0
		}
		bz.Samples = append(bz.Samples, sample)
	}
}

// Encode writes the recorded samples as a mono 16-bit PCM WAV file.
func (bz *Buzzer) Encode(out io.WriteSeeker) (err error) {
	enc := wav.NewEncoder(out, bz.SampleRate, BUZZER_BIT_DEPTH, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  bz.SampleRate,
		},
		Data:           bz.Samples,
		SourceBitDepth: BUZZER_BIT_DEPTH,
	}

	err = enc.Write(buf)
	if err != nil {
		err = errors.Join(ErrBuzzerEncode, err)
		return
	}

	err = enc.Close()
	if err != nil {
		err = errors.Join(ErrBuzzerEncode, err)
	}

	return
}
