package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type findMatchTestCase struct {
	Name             string
	Data             []byte
	Pos              int
	ExpectedDistance int
	ExpectedLength   int
}

func TestFindMatch__Basic(t *testing.T) {
	tests := []findMatchTestCase{
		{"empty window", []byte("AAAAAA"), 0, 0, 0},
		{"window shorter than min match", []byte("AAAAAA"), 2, 0, 0},
		{"exactly min match", []byte("AAAAAA"), 3, 3, 3},
		{"no repeat", []byte("ABCDEFGH"), 4, 0, 0},
		{"two bytes only", []byte("ABxAB"), 3, 0, 0},
		{"earliest wins", []byte("ABCxABCyABC"), 8, 8, 3},
		{"longest wins over earliest", []byte("ABCxABCDyABCD"), 9, 5, 4},
		{"grows to remaining input", []byte("AAAAAAAAAA"), 6, 6, 4},
		{"source may not overlap target", []byte("ABABABAB"), 2, 0, 0},
		{"period of pattern", []byte("WXYZWXYZWXYZ"), 4, 4, 4},
		{"doubling", []byte("WXYZWXYZWXYZWXYZ"), 8, 8, 8},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				distance, length := findMatch(test.Data, test.Pos)
				assert.Equal(t, test.ExpectedDistance, distance, "distance is wrong")
				assert.Equal(t, test.ExpectedLength, length, "length is wrong")
			},
		)
	}
}

func TestFindMatch__WindowLimit(t *testing.T) {
	// "ABC" at 0, filler that never matches, then "ABC" again 256 bytes later.
	// The first copy is just outside the addressable window.
	data := make([]byte, 0, 300)
	data = append(data, 'A', 'B', 'C')
	for len(data) < 256 {
		data = append(data, 0)
	}
	data = append(data, 'A', 'B', 'C')

	distance, length := findMatch(data, 256)
	assert.Equal(t, 0, distance, "match 256 bytes back can't be encoded")
	assert.Equal(t, 0, length)

	// One byte closer and it's reachable.
	data = append(data[:255], 'A', 'B', 'C')
	distance, length = findMatch(data, 255)
	assert.Equal(t, 255, distance)
	assert.Equal(t, 3, length)
}

func TestFindMatch__LengthCapped(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 1000)
	distance, length := findMatch(data, 600)
	assert.Equal(t, MaxMatchLength, length)
	assert.Equal(t, MaxDistance, distance)
}

func TestFindMatch__NeverReadsPastEnd(t *testing.T) {
	// Repeats that start near the end of the input. Any out-of-bounds
	// comparison would panic.
	for _, size := range []int{3, 4, 5, 255, 256, 257, 258, 259} {
		data := bytes.Repeat([]byte{'Q'}, size)
		for pos := 0; pos < size; pos++ {
			distance, length := findMatch(data, pos)
			assert.LessOrEqual(t, length, size-pos)
			if length > 0 {
				assert.GreaterOrEqual(t, distance, length)
			}
		}
	}
}

func TestSearchWindow(t *testing.T) {
	data := []byte("xxABCxxABCxxABC")
	assert.Equal(t, 2, searchWindow(data, 0, 12, 3))
	assert.Equal(t, 7, searchWindow(data, 3, 12, 3))
	assert.Equal(t, -1, searchWindow(data, 8, 12, 3))
}
