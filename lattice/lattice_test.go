package lattice

import "testing"

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name       string
		nx, ny, nz int
	}{
		{"zero x", 0, 4, 4},
		{"negative y", 4, -1, 4},
		{"zero z", 4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.nx, tt.ny, tt.nz); err != ErrNonPositiveDimension {
				t.Fatalf("New(%d,%d,%d) error = %v, want ErrNonPositiveDimension", tt.nx, tt.ny, tt.nz, err)
			}
		})
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	l, err := New(4, 5, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for z := 0; z < l.Nz; z++ {
		for y := 0; y < l.Ny; y++ {
			for x := 0; x < l.Nx; x++ {
				i := l.Index(x, y, z)
				gx, gy, gz := l.Coordinate(i)
				if gx != x || gy != y || gz != z {
					t.Fatalf("round trip (%d,%d,%d) -> %d -> (%d,%d,%d)", x, y, z, i, gx, gy, gz)
				}
			}
		}
	}
}

func TestIndexPeriodicWrap(t *testing.T) {
	l, err := New(3, 3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name       string
		x, y, z    int
		wantX      int
		wantY      int
		wantZ      int
	}{
		{"wrap positive x", 3, 0, 0, 0, 0, 0},
		{"wrap negative x", -1, 0, 0, 2, 0, 0},
		{"wrap all axes from seed corner", 3, 3, 3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Index(tt.x, tt.y, tt.z)
			want := l.Index(tt.wantX, tt.wantY, tt.wantZ)
			if got != want {
				t.Fatalf("Index(%d,%d,%d) = %d, want %d (same as (%d,%d,%d))", tt.x, tt.y, tt.z, got, want, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestSize(t *testing.T) {
	l, err := New(4, 5, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := l.Size(), 4*5*6; got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
}
