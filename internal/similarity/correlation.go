package similarity

import "math"

// CorrelationLabels is the metric order used by the correlation heatmap
var CorrelationLabels = []string{MetricDotproduct, MetricCosine, MetricDistance}

// CorrelationMatrix computes the pairwise Pearson correlation of the three
// metric columns over a ranked match list, in CorrelationLabels order
func CorrelationMatrix(matches []Match) [][]float64 {
	columns := [][]float64{
		column(matches, func(m Match) float64 { return m.Dotproduct }),
		column(matches, func(m Match) float64 { return m.Cosine }),
		column(matches, func(m Match) float64 { return m.Distance }),
	}

	corr := make([][]float64, len(columns))
	for i := range columns {
		corr[i] = make([]float64, len(columns))
		for j := range columns {
			corr[i][j] = pearson(columns[i], columns[j])
		}
	}
	return corr
}

func column(matches []Match, get func(Match) float64) []float64 {
	values := make([]float64, len(matches))
	for i, m := range matches {
		values[i] = get(m)
	}
	return values
}

func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
