// Package audio converts raw PCM into a playable WAV container and plays
// audio files through whatever system player is installed.
package audio

import (
	"encoding/binary"
	"fmt"
)

const wavHeaderSize = 44

// EncodeWAV wraps 16-bit mono PCM samples in a minimal RIFF/WAVE container:
// a fixed 44-byte header followed by the little-endian samples verbatim. The
// output plays in any standard audio player without further processing.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	dataLen := len(samples) * 2
	buf := make([]byte, wavHeaderSize+dataLen)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataLen))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)               // fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)                // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1)                // mono
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*2)) // byte rate
	binary.LittleEndian.PutUint16(buf[32:34], 2)                    // block align
	binary.LittleEndian.PutUint16(buf[34:36], 16)                   // bits per sample

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataLen))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[wavHeaderSize+2*i:], uint16(s))
	}
	return buf
}

// WAVInfo is the header summary recovered by ParseWAVHeader.
type WAVInfo struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	SampleCount   int
}

// ParseWAVHeader reads back the fields EncodeWAV writes. It exists so the
// encoder's output can be verified without an external player.
func ParseWAVHeader(b []byte) (WAVInfo, error) {
	if len(b) < wavHeaderSize {
		return WAVInfo{}, fmt.Errorf("wav data too short: %d bytes", len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[12:16]) != "fmt " {
		return WAVInfo{}, fmt.Errorf("not a RIFF/WAVE header")
	}
	channels := int(binary.LittleEndian.Uint16(b[22:24]))
	bits := int(binary.LittleEndian.Uint16(b[34:36]))
	dataLen := int(binary.LittleEndian.Uint32(b[40:44]))
	if channels == 0 || bits == 0 {
		return WAVInfo{}, fmt.Errorf("invalid format chunk")
	}
	return WAVInfo{
		SampleRate:    int(binary.LittleEndian.Uint32(b[24:28])),
		Channels:      channels,
		BitsPerSample: bits,
		SampleCount:   dataLen / (channels * bits / 8),
	}, nil
}

// DecodePCM16 reinterprets raw bytes as little-endian 16-bit samples. A
// trailing odd byte is dropped.
func DecodePCM16(b []byte) []int16 {
	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return samples
}
