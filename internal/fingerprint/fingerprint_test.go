package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeInt(v int) []byte {
	var b [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return b[:]
}

func TestOfIsOrderIndependent(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{5, 4, 3, 2, 1}
	assert.Equal(t, Of(a, encodeInt), Of(b, encodeInt))
}

func TestOfDetectsDifferentMultisets(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 4}
	assert.NotEqual(t, Of(a, encodeInt), Of(b, encodeInt))
}

func TestOfDetectsDuplicateVsDistinct(t *testing.T) {
	a := []int{1, 1, 2}
	b := []int{1, 2, 2}
	assert.NotEqual(t, Of(a, encodeInt), Of(b, encodeInt))
}

func TestOfEmpty(t *testing.T) {
	assert.Equal(t, uint64(0), Of([]int(nil), encodeInt))
}
