package workload

import (
	"fmt"

	"github.com/sstf-sim/sstf-sim/sched"
)

// Generator produces the interleaved request stream for a Spec. Each worker
// gets its own deterministic RNG and sampler; the per-worker streams are
// interleaved round-robin, approximating concurrent processes hitting the
// queue.
type Generator struct {
	spec Spec
	rng  *PartitionedRNG
}

// NewGenerator validates the spec and builds a Generator.
func NewGenerator(spec Spec) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	return &Generator{
		spec: spec,
		rng:  NewPartitionedRNG(NewRunKey(spec.Seed)),
	}, nil
}

// Generate returns the full request stream in arrival order.
func (g *Generator) Generate() []*sched.Request {
	workers := make([][]*sched.Request, g.spec.Workers)
	for w := range workers {
		workers[w] = g.workerStream(w)
	}

	// Round-robin interleave across workers.
	out := make([]*sched.Request, 0, g.spec.Workers*g.spec.Accesses)
	for i := 0; i < g.spec.Accesses; i++ {
		for w := range workers {
			out = append(out, workers[w][i])
		}
	}
	return out
}

func (g *Generator) workerStream(worker int) []*sched.Request {
	rng := g.rng.ForSubsystem(SubsystemWorker(worker))
	sampler := g.newSampler()
	stream := make([]*sched.Request, g.spec.Accesses)
	for i := range stream {
		op := sched.OpRead
		if rng.Intn(100) < g.spec.WritePercent {
			op = sched.OpWrite
		}
		stream[i] = &sched.Request{
			ID:     fmt.Sprintf("w%d_r%d", worker, i),
			Sector: sampler.Next(rng),
			Op:     op,
		}
	}
	return stream
}

func (g *Generator) newSampler() SectorSampler {
	if g.spec.Pattern == PatternSequential {
		return NewSequentialSampler(g.spec.DiskSectors)
	}
	return NewRandomSampler(g.spec.DiskSectors)
}
