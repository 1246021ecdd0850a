package sim

import "recrystallize/avrami"

// Result holds every output the progress/result surface exposes:
// the grain-ID and recrystallization-time volumes, the per-grain active
// flags, the full fraction history and the fitted Avrami parameters.
type Result struct {
	FeatureIds            []int32
	RecrystallizationTime []uint32
	Active                []bool
	History               []float64
	Avrami                avrami.Result
	GrainCount            int32
	Steps                 int
}
