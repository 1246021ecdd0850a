// Package sim owns the two state buffers, runs the time-step loop,
// partitions the volume across worker goroutines, and assembles the
// final result. The lattice itself is pure, read-only geometry, shared
// immutably across concurrent readers; Driver owns the two mutable
// grain-ID buffers directly and steps run synchronously, one
// tile-parallel barrier per step.
package sim

import (
	"context"
	"runtime"
	"sync"
	"time"

	"recrystallize/avrami"
	"recrystallize/kernel"
	"recrystallize/lattice"
	"recrystallize/progress"
	"recrystallize/rng"
)

// Driver owns one simulation's mutable state: the two grain-ID buffers,
// the recrystallization-time array, the shared atomic counters and the
// fraction history.
type Driver struct {
	lattice  *lattice.Lattice
	kind     lattice.Neighborhood
	pNuc     float64
	workers  int
	provider *rng.Provider
	sink     progress.Sink

	current     []int32
	working     []int32
	recrystTime []uint32
	counters    kernel.Counters

	history  []float64
	timeStep int
}

// NewDriver validates params, allocates the working buffers and returns
// a Driver ready to Step or Run. sink may be nil (equivalent to
// progress.Nop{}).
func NewDriver(params Params, sink progress.Sink) (*Driver, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	lat, err := lattice.New(params.Dimensions.Nx, params.Dimensions.Ny, params.Dimensions.Nz)
	if err != nil {
		return nil, err
	}

	numCells := lat.Size()
	if numCells <= 0 || numCells > maxVoxels {
		return nil, ErrAllocationFailed
	}

	if sink == nil {
		sink = progress.Nop{}
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pNuc := params.NucleationRate * params.Resolution.Dx * params.Resolution.Dy * params.Resolution.Dz

	d := &Driver{
		lattice:     lat,
		kind:        params.Neighborhood,
		pNuc:        pNuc,
		workers:     workers,
		provider:    rng.NewProvider(params.Deterministic, params.Seed, nowMillis),
		sink:        sink,
		current:     make([]int32, numCells),
		working:     make([]int32, numCells),
		recrystTime: make([]uint32, numCells),
		history:     []float64{0},
		timeStep:    1,
	}
	return d, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Preseed sets voxel i to grain id directly, before any Step is run. It
// is the library-level hook host code and tests use to start a run from
// a partially recrystallized volume. It also raises GrainCount so
// subsequently nucleated grains don't collide with the preseeded id,
// preserving the ID-density invariant.
func (d *Driver) Preseed(i int, grain int32) {
	d.current[i] = grain
	if grain > d.counters.GrainCount.Load() {
		d.counters.GrainCount.Store(grain)
	}
}

// Lattice exposes the read-only geometry backing this run.
func (d *Driver) Lattice() *lattice.Lattice { return d.lattice }

// CurrentIDs returns the live current_id buffer. Callers must not mutate
// it outside Preseed before the first Step.
func (d *Driver) CurrentIDs() []int32 { return d.current }

// RecrystallizationTime returns the live recryst_time buffer.
func (d *Driver) RecrystallizationTime() []uint32 { return d.recrystTime }

// Step runs exactly one time step: resets the unrecrystallized counter,
// partitions the volume across worker goroutines (each with its own RNG
// stream), swaps the double buffer, records the fraction and advances
// the time step only when progress was made. It returns the fraction
// recrystallized at the end of this step and whether the simulation has
// terminated (every voxel non-zero).
func (d *Driver) Step(ctx context.Context) (fraction float64, done bool, err error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	d.counters.Unrecrystallized.Store(0)
	numCells := d.lattice.Size()
	tileSize := (numCells + d.workers - 1) / d.workers

	var wg sync.WaitGroup
	for start := 0; start < numCells; start += tileSize {
		end := start + tileSize
		if end > numCells {
			end = numCells
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			r := d.provider.New(start, end)
			for i := start; i < end; i++ {
				kernel.UpdateVoxel(d.lattice, d.kind, i, d.timeStep, d.current, d.working, d.recrystTime, d.pNuc, &d.counters, r)
			}
		}(start, end)
	}
	wg.Wait()

	d.current, d.working = d.working, d.current

	unrecrystallized := d.counters.Unrecrystallized.Load()
	fraction = 1 - float64(unrecrystallized)/float64(numCells)

	d.sink.Progress(progress.Update{
		Step:        d.timeStep,
		Percent:     fraction * 100,
		GrainCount:  d.counters.GrainCount.Load(),
		HistoryTail: fraction,
	})

	if fraction > 0 {
		d.history = append(d.history, fraction)
		d.timeStep++
	}

	return fraction, unrecrystallized == 0, nil
}

// Run steps the simulation until every voxel has recrystallized,
// returning the assembled Result. If ctx is cancelled between steps, Run
// returns the context error and no Result — partial outputs are never
// published.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	for {
		_, done, err := d.Step(ctx)
		if err != nil {
			return nil, err
		}
		if done {
			return d.finalize(), nil
		}
	}
}

func (d *Driver) finalize() *Result {
	grainCount := d.counters.GrainCount.Load()

	active := make([]bool, grainCount+1)
	for g := int32(1); g <= grainCount; g++ {
		active[g] = true
	}

	fit := avrami.Fit(d.history)
	if !fit.Fitted {
		d.sink.Warning("unable to fit Avrami parameters")
	}

	return &Result{
		FeatureIds:            append([]int32(nil), d.current...),
		RecrystallizationTime: append([]uint32(nil), d.recrystTime...),
		Active:                active,
		History:               append([]float64(nil), d.history...),
		Avrami:                fit,
		GrainCount:            grainCount,
		Steps:                 d.timeStep - 1,
	}
}

// Run is the one-shot convenience entry point: validate, build a Driver
// and run it to completion.
func Run(ctx context.Context, params Params, sink progress.Sink) (*Result, error) {
	d, err := NewDriver(params, sink)
	if err != nil {
		return nil, err
	}
	return d.Run(ctx)
}
