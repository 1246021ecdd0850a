package lattice

// Lattice is an immutable, read-only geometry object describing a
// Nx×Ny×Nz periodic cubic grid. It carries no per-voxel state and can be
// shared across worker goroutines without synchronization.
type Lattice struct {
	Nx, Ny, Nz int
}

// New builds a Lattice for the given dimensions. All three must be
// strictly positive.
func New(nx, ny, nz int) (*Lattice, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrNonPositiveDimension
	}
	return &Lattice{Nx: nx, Ny: ny, Nz: nz}, nil
}

// Size returns the total number of voxels Nx*Ny*Nz.
func (l *Lattice) Size() int {
	return l.Nx * l.Ny * l.Nz
}

// Index maps a (x,y,z) coordinate to its linear index, wrapping each
// component modulo its dimension (periodic boundary).
func (l *Lattice) Index(x, y, z int) int {
	x = wrap(x, l.Nx)
	y = wrap(y, l.Ny)
	z = wrap(z, l.Nz)
	return x + l.Nx*y + l.Nx*l.Ny*z
}

// Coordinate recovers the (x,y,z) coordinate for a linear index produced
// by Index. i must already be in [0, Size()).
func (l *Lattice) Coordinate(i int) (x, y, z int) {
	x = i % l.Nx
	rem := i / l.Nx
	y = rem % l.Ny
	z = rem / l.Ny
	return x, y, z
}

// wrap reduces v into [0, n) for a periodic axis of length n.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
