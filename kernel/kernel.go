// Package kernel implements the single-voxel recrystallization decision
// rule: propagate, nucleate, suppress, or join a neighboring grain.
package kernel

import (
	"math/rand"
	"sync/atomic"

	"recrystallize/lattice"
)

// Counters are the shared, atomically-updated per-step tallies. They are
// the only state a worker mutates outside the voxel it owns.
type Counters struct {
	Unrecrystallized atomic.Int64
	GrainCount       atomic.Int32
}

// UpdateVoxel applies the decision rule to voxel i for time step t,
// reading only current and writing only working[i], recrystTime[i] (and
// the shared atomic counters) — the double-buffer isolation that makes parallel
// execution across voxels correct.
func UpdateVoxel(
	l *lattice.Lattice,
	kind lattice.Neighborhood,
	i int,
	t int,
	current []int32,
	working []int32,
	recrystTime []uint32,
	pNuc float64,
	counters *Counters,
	r *rand.Rand,
) {
	if current[i] != 0 {
		working[i] = current[i]
		return
	}

	variant := 0
	if n := lattice.NumVariants(kind); n > 1 {
		variant = r.Intn(n)
	}
	neighbors := l.Neighbors(kind, i, variant)

	var goodNeighbors []int
	for _, j := range neighbors {
		if current[j] != 0 {
			goodNeighbors = append(goodNeighbors, j)
		}
	}

	if len(goodNeighbors) == 0 {
		if r.Float64() > pNuc {
			counters.Unrecrystallized.Add(1)
			working[i] = 0
			return
		}

		goodSeed := true
		for _, j := range l.ExtendedMoore(i) {
			if current[j] != 0 {
				goodSeed = false
				break
			}
		}

		if goodSeed {
			g := counters.GrainCount.Add(1)
			working[i] = g
			recrystTime[i] = uint32(t)
		} else {
			counters.Unrecrystallized.Add(1)
			working[i] = 0
		}
		return
	}

	k := goodNeighbors[r.Intn(len(goodNeighbors))]
	working[i] = current[k]
	recrystTime[i] = uint32(t)
}
