package speech

import (
	"bytes"
	"encoding/binary"
)

// Gemini TTS emits raw 24 kHz 16-bit mono PCM; browsers need a container.
const (
	sampleRate    = 24000
	bitsPerSample = 16
	channels      = 1
	byteRate      = sampleRate * channels * bitsPerSample / 8
	blockAlign    = channels * bitsPerSample / 8
)

// pcmToWAV prepends a standard 44-byte RIFF/WAVE header to the PCM stream.
func pcmToWAV(pcm []byte) []byte {
	dataSize := len(pcm)
	fileSize := 36 + dataSize

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(fileSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM subchunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(pcm)

	return buf.Bytes()
}
