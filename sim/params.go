package sim

import "recrystallize/lattice"

// Dimensions is the volume's voxel count along each axis.
type Dimensions struct {
	Nx, Ny, Nz int
}

// Resolution is the voxel size in each axis' physical units.
type Resolution struct {
	Dx, Dy, Dz float64
}

// Origin is preserved to the output geometry; the core algorithm never
// reads it.
type Origin struct {
	X, Y, Z float64
}

// Params configures one simulation run.
type Params struct {
	Dimensions     Dimensions
	Resolution     Resolution
	Origin         Origin
	NucleationRate float64
	Neighborhood   lattice.Neighborhood

	// Seed pins the per-worker RNG streams when Deterministic is true.
	// Grain-ID numbering still depends on the order in which goroutines
	// reach nucleation sites, so even a fixed Seed does not make a run
	// bitwise reproducible across different Workers counts or scheduler
	// interleavings — only each individual stream's draws.
	Seed          int64
	Deterministic bool

	// Workers is the number of tile goroutines per step. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}
