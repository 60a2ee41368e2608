package tetris

import "math/rand"

// PieceSource yields the kind of each newly spawned piece.
type PieceSource interface {
	Next() Kind
}

// UniformSource picks each kind independently with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a uniform source over the seeded generator.
func NewUniformSource(rng *rand.Rand) *UniformSource {
	return &UniformSource{rng: rng}
}

// Next returns a uniformly random kind.
func (s *UniformSource) Next() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// BagSource deals all seven kinds in shuffled order before repeating,
// bounding droughts of any one kind to twelve pieces.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource creates a 7-bag source over the seeded generator.
func NewBagSource(rng *rand.Rand) *BagSource {
	return &BagSource{rng: rng}
}

// Next returns the next kind from the current bag, refilling when empty.
func (s *BagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.bag = append(s.bag[:0], Kinds[:]...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	k := s.bag[0]
	s.bag = s.bag[1:]
	return k
}

// Randomizer names a PieceSource strategy in configuration.
type Randomizer string

const (
	RandomizerUniform Randomizer = "uniform"
	RandomizerBag     Randomizer = "bag"
)

// NewSource builds the source for the named strategy. Unknown names fall
// back to uniform selection.
func NewSource(r Randomizer, rng *rand.Rand) PieceSource {
	if r == RandomizerBag {
		return NewBagSource(rng)
	}
	return NewUniformSource(rng)
}

// sequenceSource replays a fixed list of kinds, cycling at the end.
type sequenceSource struct {
	kinds []Kind
	i     int
}

// NewSequenceSource returns a source that cycles through kinds in order.
// Useful for replays and deterministic tests.
func NewSequenceSource(kinds ...Kind) PieceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindI}
	}
	return &sequenceSource{kinds: kinds}
}

func (s *sequenceSource) Next() Kind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}
