// Package wav encodes 16-bit PCM audio as in-memory WAV files.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const headerSize = 44

// Header describes the format chunk of a PCM WAV file.
type Header struct {
	SampleRate    uint32
	NumChannels   uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Writer accumulates PCM samples and renders them as a WAV byte slice.
type Writer struct {
	data          bytes.Buffer
	sampleRate    uint32
	numChannels   uint16
	bitsPerSample uint16
	samples       uint32
}

// NewWriter creates a 16-bit PCM writer.
func NewWriter(sampleRate uint32, numChannels uint16) *Writer {
	if numChannels == 0 {
		numChannels = 1
	}
	return &Writer{
		sampleRate:    sampleRate,
		numChannels:   numChannels,
		bitsPerSample: 16,
	}
}

// WriteSineWave appends a sine wave of the given frequency and duration.
func (w *Writer) WriteSineWave(frequency float64, durationMs int) {
	samplesPerChannel := int(w.sampleRate) * durationMs / 1000

	for i := 0; i < samplesPerChannel; i++ {
		t := float64(i) / float64(w.sampleRate)
		sample := int16(math.Sin(2*math.Pi*frequency*t) * 32767 * 0.3)

		for ch := 0; ch < int(w.numChannels); ch++ {
			_ = binary.Write(&w.data, binary.LittleEndian, sample)
		}
		w.samples++
	}
}

// WriteSilence appends durationMs of silence.
func (w *Writer) WriteSilence(durationMs int) {
	n := int(w.sampleRate) * durationMs / 1000 * int(w.numChannels)
	w.data.Write(make([]byte, n*2))
	w.samples += uint32(int(w.sampleRate) * durationMs / 1000)
}

// Bytes returns the complete WAV file.
func (w *Writer) Bytes() []byte {
	dataSize := uint32(w.data.Len())
	out := bytes.NewBuffer(make([]byte, 0, headerSize+int(dataSize)))

	byteRate := w.sampleRate * uint32(w.numChannels) * uint32(w.bitsPerSample) / 8
	blockAlign := w.numChannels * w.bitsPerSample / 8

	out.WriteString("RIFF")
	_ = binary.Write(out, binary.LittleEndian, dataSize+36)
	out.WriteString("WAVE")
	out.WriteString("fmt ")
	_ = binary.Write(out, binary.LittleEndian, uint32(16))
	_ = binary.Write(out, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(out, binary.LittleEndian, w.numChannels)
	_ = binary.Write(out, binary.LittleEndian, w.sampleRate)
	_ = binary.Write(out, binary.LittleEndian, byteRate)
	_ = binary.Write(out, binary.LittleEndian, blockAlign)
	_ = binary.Write(out, binary.LittleEndian, w.bitsPerSample)
	out.WriteString("data")
	_ = binary.Write(out, binary.LittleEndian, dataSize)
	out.Write(w.data.Bytes())

	return out.Bytes()
}

// SamplesPerChannel returns the number of samples written per channel.
func (w *Writer) SamplesPerChannel() uint32 {
	return w.samples
}

// ParseHeader reads the canonical 44-byte header of a PCM WAV file.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, errors.New("wav data too short")
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Header{}, errors.New("not a RIFF/WAVE file")
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		return Header{}, fmt.Errorf("unexpected chunk layout")
	}
	if format := binary.LittleEndian.Uint16(data[20:22]); format != 1 {
		return Header{}, fmt.Errorf("unsupported audio format %d", format)
	}

	return Header{
		NumChannels:   binary.LittleEndian.Uint16(data[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(data[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(data[34:36]),
		DataSize:      binary.LittleEndian.Uint32(data[40:44]),
	}, nil
}
