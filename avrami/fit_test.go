package avrami

import (
	"math"
	"testing"
)

func TestFitMatchesManualRegression(t *testing.T) {
	// history = [0, 0.05, 0.20, 0.55, 0.90, 1.0]: the initial 0, four
	// interior steps and the terminal 1.0 entry, which Fit drops before
	// regressing.
	history := []float64{0, 0.05, 0.20, 0.55, 0.90, 1.0}

	xs := []float64{math.Log(1), math.Log(2), math.Log(3), math.Log(4)}
	ys := []float64{
		math.Log(-math.Log(1 - 0.05)),
		math.Log(-math.Log(1 - 0.20)),
		math.Log(-math.Log(1 - 0.55)),
		math.Log(-math.Log(1 - 0.90)),
	}
	wantSlope, wantIntercept, ok := linearRegression(xs, ys)
	if !ok {
		t.Fatalf("manual regression failed to converge")
	}

	got := Fit(history)
	if !got.Fitted {
		t.Fatalf("Fit did not converge")
	}
	if math.Abs(got.N-wantSlope) > 1e-9 {
		t.Fatalf("N = %v, want %v", got.N, wantSlope)
	}
	wantK := math.Exp(wantIntercept)
	if math.Abs(got.K-wantK) > 1e-9 {
		t.Fatalf("K = %v, want %v", got.K, wantK)
	}
}

func TestFitSkipsDegenerateFractions(t *testing.T) {
	// A leading 0 at t=1 (x<=0) and the dropped terminal 1.0 (x>=1) are
	// both excluded from the regression; only interior points count.
	history := []float64{0, 0, 0.5, 0.8, 1.0}
	got := Fit(history)
	if !got.Fitted {
		t.Fatalf("expected a fit from the remaining interior points")
	}
}

func TestFitFailsWithFewerThanTwoPoints(t *testing.T) {
	history := []float64{0, 0.5, 1.0}
	got := Fit(history)
	if got.Fitted {
		t.Fatalf("expected Fitted=false with only one usable point")
	}
}

func TestFitFailsOnEmptyHistory(t *testing.T) {
	got := Fit(nil)
	if got.Fitted {
		t.Fatalf("expected Fitted=false on empty history")
	}
}

func TestFitFailsOnDegenerateXVariance(t *testing.T) {
	// Every t maps to log(t), which is never repeated, so driving
	// degenerate variance requires forcing linearRegression directly.
	_, _, ok := linearRegression([]float64{1, 1, 1}, []float64{0.1, 0.2, 0.3})
	if ok {
		t.Fatalf("expected linearRegression to fail on zero x-variance")
	}
}
