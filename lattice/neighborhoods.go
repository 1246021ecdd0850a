package lattice

// Neighborhood selects one of the six named stencils used by the update
// kernel. Values match the host pipeline's field encoding so a rewrite
// preserves interoperability.
type Neighborhood int

const (
	VonNeumann   Neighborhood = 0
	EightCell    Neighborhood = 1
	FourteenCell Neighborhood = 2
	EighteenCell Neighborhood = 3
	TwentyCell   Neighborhood = 4
	Moore        Neighborhood = 5
)

type offset [3]int

// NumVariants reports how many orientation variants a neighborhood kind
// exposes. VonNeumann, EighteenCell and Moore are isotropic on the cubic
// lattice and have exactly one variant; EightCell, FourteenCell and
// TwentyCell are not and expose several rotated templates.
func NumVariants(kind Neighborhood) int {
	switch kind {
	case EightCell:
		return 6
	case FourteenCell, TwentyCell:
		return 4
	default:
		return 1
	}
}

var vonNeumannOffsets = []offset{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

var cornerOffsets = buildCornerOffsets()
var eighteenOffsets = buildEighteenOffsets()
var mooreOffsets = buildMooreOffsets()

func buildCornerOffsets() []offset {
	offs := make([]offset, 0, 8)
	for _, dx := range [2]int{1, -1} {
		for _, dy := range [2]int{1, -1} {
			for _, dz := range [2]int{1, -1} {
				offs = append(offs, offset{dx, dy, dz})
			}
		}
	}
	return offs
}

func buildEighteenOffsets() []offset {
	offs := make([]offset, 0, 18)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nonzero := 0
				if dx != 0 {
					nonzero++
				}
				if dy != 0 {
					nonzero++
				}
				if dz != 0 {
					nonzero++
				}
				if nonzero <= 2 {
					offs = append(offs, offset{dx, dy, dz})
				}
			}
		}
	}
	return offs
}

func buildMooreOffsets() []offset {
	offs := make([]offset, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offs = append(offs, offset{dx, dy, dz})
			}
		}
	}
	return offs
}

// edgePair names the two non-zero axes of an edge-type offset (exactly
// two non-zero components); third is the axis left at zero.
type edgePair struct {
	a, b, third int
}

var edgePairs = []edgePair{
	{0, 1, 2}, // xy plane, z fixed at 0
	{0, 2, 1}, // xz plane, y fixed at 0
	{1, 2, 0}, // yz plane, x fixed at 0
}

// eightCellTemplate returns the 8-offset shell whose "pole" faces the
// given axis (0=x,1=y,2=z) in the given sign direction. Four offsets tilt
// toward the pole from each of the other two axes; four lie in the plane
// perpendicular to the pole axis. Rotating the pole across the six
// axis directions produces the six orientation variants.
func eightCellTemplate(axis int, sign int) []offset {
	other1, other2 := (axis+1)%3, (axis+2)%3
	offs := make([]offset, 0, 8)
	for _, o := range [2]int{other1, other2} {
		for _, d := range [2]int{1, -1} {
			var off offset
			off[axis] = sign
			off[o] = d
			offs = append(offs, off)
		}
	}
	for _, d1 := range [2]int{1, -1} {
		for _, d2 := range [2]int{1, -1} {
			var off offset
			off[other1] = d1
			off[other2] = d2
			offs = append(offs, off)
		}
	}
	return offs
}

var eightCellVariants = buildEightCellVariants()

func buildEightCellVariants() [][]offset {
	variants := make([][]offset, 0, 6)
	for axis := 0; axis < 3; axis++ {
		for _, sign := range [2]int{1, -1} {
			variants = append(variants, eightCellTemplate(axis, sign))
		}
	}
	return variants
}

// fourteenCellTemplate returns the 6 Von Neumann offsets plus 8 of the 12
// edge-type offsets (two of the three axis-planes, in full), excluding
// the plane at index `excluded`. Cycling which plane is excluded across
// variant%3 gives the four orientation variants named in the offset
// table (variant 3 repeats variant 0's exclusion).
func fourteenCellTemplate(variant int) []offset {
	excluded := variant % 3
	offs := make([]offset, 0, 14)
	offs = append(offs, vonNeumannOffsets...)
	for p, pair := range edgePairs {
		if p == excluded {
			continue
		}
		for _, da := range [2]int{1, -1} {
			for _, db := range [2]int{1, -1} {
				var off offset
				off[pair.a] = da
				off[pair.b] = db
				offs = append(offs, off)
			}
		}
	}
	return offs
}

var fourteenCellVariants = buildFourteenCellVariants()

func buildFourteenCellVariants() [][]offset {
	variants := make([][]offset, 0, 4)
	for v := 0; v < 4; v++ {
		variants = append(variants, fourteenCellTemplate(v))
	}
	return variants
}

// twentyCellTemplate returns all 6 face offsets and all 8 corner offsets
// plus 6 of the 12 edge offsets selected by sign-parity: for each
// axis-plane, "anti-aligned" edges (signs differ) are kept when parity is
// 0 and "aligned" edges (both signs equal) are kept when parity is 1. variant/2==1
// additionally flips the parity rule for the xy plane only, so all four
// combinations of (parity, flip) produce distinct 20-offset shapes.
func twentyCellTemplate(variant int) []offset {
	parity := variant % 2
	flipFirstPlane := variant/2 == 1
	offs := make([]offset, 0, 20)
	offs = append(offs, vonNeumannOffsets...)
	offs = append(offs, cornerOffsets...)
	for p, pair := range edgePairs {
		want := parity
		if flipFirstPlane && p == 0 {
			want = 1 - parity
		}
		for _, da := range [2]int{1, -1} {
			for _, db := range [2]int{1, -1} {
				aligned := 0
				if da == db {
					aligned = 1
				}
				if aligned != want {
					continue
				}
				var off offset
				off[pair.a] = da
				off[pair.b] = db
				offs = append(offs, off)
			}
		}
	}
	return offs
}

var twentyCellVariants = buildTwentyCellVariants()

func buildTwentyCellVariants() [][]offset {
	variants := make([][]offset, 0, 4)
	for v := 0; v < 4; v++ {
		variants = append(variants, twentyCellTemplate(v))
	}
	return variants
}

// Neighbors returns the linear indices of voxel i's neighbors under the
// given stencil. variant selects an orientation for EightCell,
// FourteenCell and TwentyCell and is ignored otherwise; callers should
// draw it uniformly in [0, NumVariants(kind)) per voxel.
func (l *Lattice) Neighbors(kind Neighborhood, i int, variant int) []int {
	x, y, z := l.Coordinate(i)
	switch kind {
	case VonNeumann:
		return l.apply(x, y, z, vonNeumannOffsets)
	case EightCell:
		return l.apply(x, y, z, eightCellVariants[variant%len(eightCellVariants)])
	case FourteenCell:
		return l.apply(x, y, z, fourteenCellVariants[variant%len(fourteenCellVariants)])
	case EighteenCell:
		return l.apply(x, y, z, eighteenOffsets)
	case TwentyCell:
		return l.apply(x, y, z, twentyCellVariants[variant%len(twentyCellVariants)])
	case Moore:
		return l.apply(x, y, z, mooreOffsets)
	default:
		return nil
	}
}

// extendedMooreOffsets holds every offset whose Chebyshev distance from
// the origin is exactly 2 — the shell immediately surrounding Moore
// (distance 1), used for the anti-clumping check during nucleation.
var extendedMooreOffsets = buildExtendedMooreOffsets()

func buildExtendedMooreOffsets() []offset {
	offs := make([]offset, 0, 98)
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			for dz := -2; dz <= 2; dz++ {
				if chebyshev(dx, dy, dz) != 2 {
					continue
				}
				offs = append(offs, offset{dx, dy, dz})
			}
		}
	}
	return offs
}

func chebyshev(dx, dy, dz int) int {
	m := abs(dx)
	if abs(dy) > m {
		m = abs(dy)
	}
	if abs(dz) > m {
		m = abs(dz)
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ExtendedMoore returns the anti-clumping shell around voxel i: every
// voxel within Chebyshev distance 2 but not within distance 1, i.e.
// strictly outside every other neighborhood in this package.
func (l *Lattice) ExtendedMoore(i int) []int {
	x, y, z := l.Coordinate(i)
	return l.apply(x, y, z, extendedMooreOffsets)
}

func (l *Lattice) apply(x, y, z int, offs []offset) []int {
	out := make([]int, len(offs))
	for k, o := range offs {
		out[k] = l.Index(x+o[0], y+o[1], z+o[2])
	}
	return out
}
