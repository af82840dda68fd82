package similarity

import (
	"math"
	"testing"
)

func TestCorrelationMatrixShape(t *testing.T) {
	matches := []Match{
		{Distance: 1.0, Dotproduct: 3.0, Cosine: 0.9},
		{Distance: 2.0, Dotproduct: 2.0, Cosine: 0.7},
		{Distance: 3.0, Dotproduct: 1.0, Cosine: 0.2},
	}

	corr := CorrelationMatrix(matches)
	if len(corr) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(corr))
	}
	for i, row := range corr {
		if len(row) != 3 {
			t.Fatalf("Row %d: expected 3 columns, got %d", i, len(row))
		}
		if math.Abs(corr[i][i]-1.0) > 1e-9 {
			t.Errorf("Diagonal (%d,%d): expected 1.0, got %f", i, i, corr[i][i])
		}
		for j := range row {
			if math.Abs(corr[i][j]-corr[j][i]) > 1e-9 {
				t.Errorf("Matrix not symmetric at (%d,%d)", i, j)
			}
			if corr[i][j] < -1.0-1e-9 || corr[i][j] > 1.0+1e-9 {
				t.Errorf("Correlation (%d,%d) out of range: %f", i, j, corr[i][j])
			}
		}
	}
}

func TestCorrelationPerfectAnticorrelation(t *testing.T) {
	// Dotproduct decreases exactly as Distance increases
	matches := []Match{
		{Distance: 1.0, Dotproduct: 3.0, Cosine: 0.5},
		{Distance: 2.0, Dotproduct: 2.0, Cosine: 0.5},
		{Distance: 3.0, Dotproduct: 1.0, Cosine: 0.5},
	}

	corr := CorrelationMatrix(matches)

	// Labels order is Dotproduct, Cosine, Distance
	if math.Abs(corr[0][2]-(-1.0)) > 1e-9 {
		t.Errorf("Expected Dotproduct/Distance correlation -1.0, got %f", corr[0][2])
	}
	// Cosine is constant, so its correlations collapse to zero
	if corr[1][0] != 0 || corr[1][2] != 0 {
		t.Errorf("Expected zero correlation for constant column, got %f and %f",
			corr[1][0], corr[1][2])
	}
}

func TestCorrelationEmptyMatches(t *testing.T) {
	corr := CorrelationMatrix(nil)
	for i := range corr {
		for j := range corr[i] {
			if corr[i][j] != 0 {
				t.Errorf("Expected zero correlation for empty input at (%d,%d)", i, j)
			}
		}
	}
}
