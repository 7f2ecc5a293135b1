package workload

import "math/rand"

// SectorSampler produces the next target sector for a worker.
type SectorSampler interface {
	// Next returns a sector in [0, diskSectors).
	Next(rng *rand.Rand) int64
}

// RandomSampler picks sectors uniformly across the device.
type RandomSampler struct {
	diskSectors int64
}

func NewRandomSampler(diskSectors int64) *RandomSampler {
	return &RandomSampler{diskSectors: diskSectors}
}

func (s *RandomSampler) Next(rng *rand.Rand) int64 {
	return rng.Int63n(s.diskSectors)
}

// SequentialSampler walks the device with a fixed stride, wrapping at the
// end. Useful as a baseline where reordering should win nothing.
type SequentialSampler struct {
	diskSectors int64
	stride      int64
	i           int64
}

// NewSequentialSampler uses the historical stride of 10 sectors.
func NewSequentialSampler(diskSectors int64) *SequentialSampler {
	return &SequentialSampler{diskSectors: diskSectors, stride: 10}
}

func (s *SequentialSampler) Next(_ *rand.Rand) int64 {
	pos := (s.i * s.stride) % s.diskSectors
	s.i++
	return pos
}
