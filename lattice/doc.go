// Package lattice provides the indexing and neighborhood-enumeration
// machinery for a periodic 3D regular grid of voxels.
//
// What:
//
//   - Lattice maps between (x,y,z) coordinates and a linear index using
//     periodic (wrap-around) boundaries on all three axes.
//   - Neighbors enumerates the six named stencils used by the
//     recrystallization update kernel: VonNeumann, EightCell, FourteenCell,
//     EighteenCell, TwentyCell and Moore. EightCell, FourteenCell and
//     TwentyCell are not isotropic on the cubic lattice and expose several
//     rotated orientation variants; callers pick one per voxel.
//   - ExtendedMoore returns the larger shell used by the anti-clumping
//     nucleation check, strictly outside every stencil above.
//
// Why:
//
//   - Grain-growth cellular automata need a cheap, allocation-light way to
//     list a voxel's neighbors under several candidate stencils without
//     branching on boundary conditions at every voxel.
//
// See recrystallize/kernel for how a neighbor list feeds the per-voxel
// decision rule.
package lattice
