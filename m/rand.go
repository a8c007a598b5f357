package m

// Taken from Eskil Steenberg's talk "How I program C":
// https://www.youtube.com/watch?v=443UNeGrFoM#t=2h09m55s
func frandi(index uint32) uint32 {
	index = (index << 13) ^ index
	return (index*(index*index*15731+789221) + 1376312589) & 0x7fffffff
}

// RandState is a small deterministic generator. It is not safe for
// concurrent use; give each goroutine its own.
type RandState uint32

func NewRand() *RandState {
	s := RandState(123456789)
	return &s
}

// Rand returns a value in [0, 1].
func (rnd *RandState) Rand() Float {
	result := frandi(uint32(*rnd))
	*rnd = RandState(result + 1)
	return Float(result) / Float(0x7fff_ffff)
}

// Range returns a value in [lo, hi].
func (rnd *RandState) Range(lo, hi Float) Float {
	return lo + (hi-lo)*rnd.Rand()
}
