package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_Header(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768}
	b := EncodeWAV(samples, 24000)

	require.Len(t, b, wavHeaderSize+len(samples)*2)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, "fmt ", string(b[12:16]))
	assert.Equal(t, "data", string(b[36:40]))

	// Chunk sizes are consistent with the payload.
	assert.Equal(t, uint32(36+len(samples)*2), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, uint32(len(samples)*2), binary.LittleEndian.Uint32(b[40:44]))

	info, err := ParseWAVHeader(b)
	require.NoError(t, err)
	assert.Equal(t, WAVInfo{
		SampleRate:    24000,
		Channels:      1,
		BitsPerSample: 16,
		SampleCount:   len(samples),
	}, info)
}

func TestEncodeWAV_RoundTripsSamples(t *testing.T) {
	samples := []int16{100, -200, 300, -32768, 32767, 0}
	b := EncodeWAV(samples, 22050)

	decoded := DecodePCM16(b[wavHeaderSize:])
	assert.Equal(t, samples, decoded)
}

func TestEncodeWAV_EmptyInput(t *testing.T) {
	b := EncodeWAV(nil, 24000)

	require.Len(t, b, wavHeaderSize)
	info, err := ParseWAVHeader(b)
	require.NoError(t, err)
	assert.Zero(t, info.SampleCount)
}

func TestParseWAVHeader_Rejects(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ParseWAVHeader([]byte("RIFF"))
		assert.Error(t, err)
	})

	t.Run("wrong magic", func(t *testing.T) {
		b := EncodeWAV([]int16{1}, 24000)
		copy(b[8:12], "OGGS")
		_, err := ParseWAVHeader(b)
		assert.Error(t, err)
	})
}

func TestDecodePCM16(t *testing.T) {
	t.Run("little endian pairs", func(t *testing.T) {
		got := DecodePCM16([]byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x80})
		assert.Equal(t, []int16{1, -1, -32768}, got)
	})

	t.Run("odd trailing byte dropped", func(t *testing.T) {
		got := DecodePCM16([]byte{0x01, 0x00, 0x02})
		assert.Equal(t, []int16{1}, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, DecodePCM16(nil))
	})
}
