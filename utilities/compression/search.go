package compression

import "bytes"

const (
	// WindowSize is the number of already-processed bytes the compressor keeps
	// in view when looking for repeats.
	WindowSize = 256
	// MaxDistance is the farthest back a back-reference can point. Distances
	// are stored in one byte, so the oldest position of the window can't be
	// addressed.
	MaxDistance = WindowSize - 1
	// MinMatchLength is the shortest run worth replacing with a back-reference.
	// Anything shorter costs fewer bytes as literals.
	MinMatchLength = 3
	// MaxMatchLength is the longest run a single back-reference can copy.
	MaxMatchLength = 255
)

// findMatch looks for the longest earlier copy of the bytes starting at `pos`.
// It returns the back-distance and length of the match, or (0, 0) if there is
// no match of at least [MinMatchLength] bytes.
//
// Among matches of the same length, the one farthest back wins. The source of
// a match always ends at or before `pos`, so the distance is never less than
// the length.
func findMatch(data []byte, pos int) (distance, length int) {
	windowStart := pos - MaxDistance
	if windowStart < 0 {
		windowStart = 0
	}

	// Never compare past the end of the input.
	maxLength := len(data) - pos
	if maxLength > MaxMatchLength {
		maxLength = MaxMatchLength
	}

	// A match of length n+1 is also a match of length n, so the earliest
	// candidate for a longer trial can't come before the previous one.
	candidate := windowStart
	for trialLength := MinMatchLength; trialLength <= maxLength; trialLength++ {
		candidate = searchWindow(data, candidate, pos, trialLength)
		if candidate < 0 {
			break
		}
		distance = pos - candidate
		length = trialLength
	}
	return distance, length
}

// searchWindow returns the lowest index i in [start, pos-trialLength] such that
// data[i:i+trialLength] equals data[pos:pos+trialLength], or -1 if there is
// none.
func searchWindow(data []byte, start, pos, trialLength int) int {
	target := data[pos : pos+trialLength]
	lastStart := pos - trialLength

	for i := start; i <= lastStart; i++ {
		// Skip straight to the next place the first byte occurs.
		skip := bytes.IndexByte(data[i:lastStart+1], target[0])
		if skip < 0 {
			return -1
		}
		i += skip
		if bytes.Equal(data[i:i+trialLength], target) {
			return i
		}
	}
	return -1
}
