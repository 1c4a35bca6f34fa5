package matcher

import "math/bits"

// MatchSet is the set of rule indices whose pattern matched an input
type MatchSet struct {
	words []uint64
	count int
}

func newMatchSet(n int) MatchSet {
	return MatchSet{words: make([]uint64, (n+63)/64)}
}

func (s *MatchSet) add(i int) {
	w, b := i/64, uint(i%64)
	if s.words[w]&(1<<b) == 0 {
		s.words[w] |= 1 << b
		s.count++
	}
}

// Has reports whether rule i matched
func (s MatchSet) Has(i int) bool {
	if i < 0 || i/64 >= len(s.words) {
		return false
	}
	return s.words[i/64]&(1<<uint(i%64)) != 0
}

// Len is the number of matching rules
func (s MatchSet) Len() int {
	return s.count
}

// MatchedAny reports whether at least one rule matched
func (s MatchSet) MatchedAny() bool {
	return s.count > 0
}

// Min returns the lowest matching index
func (s MatchSet) Min() (int, bool) {
	for w, word := range s.words {
		if word != 0 {
			return w*64 + bits.TrailingZeros64(word), true
		}
	}
	return 0, false
}

// Indices lists matching indices in ascending order
func (s MatchSet) Indices() []int {
	out := make([]int, 0, s.count)
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &^= 1 << uint(b)
		}
	}
	return out
}
