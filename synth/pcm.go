package synth

import (
	"encoding/binary"

	"github.com/gopxl/beep"
)

const renderChunk = 512

// Render drains s into interleaved stereo int16 LE bytes, exactly samples
// frames long. A streamer that ends early leaves silence.
func Render(s beep.Streamer, samples int) []byte {
	out := make([]byte, samples*4)
	buf := make([][2]float64, renderChunk)

	pos := 0
	for pos < samples {
		want := min(renderChunk, samples-pos)
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			idx := (pos + i) * 4
			binary.LittleEndian.PutUint16(out[idx:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(out[idx+2:], uint16(toInt16(buf[i][1])))
		}
		pos += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// toInt16 hard clips to [-1, 1]
func toInt16(v float64) int16 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}
