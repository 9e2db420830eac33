package metrics

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ShapeMarkers summarizes the distribution of a metric across the filtered
// performance table, so the display layer can warn when headline averages
// are dominated by a few outlier posts.
type ShapeMarkers struct {
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Q25          float64 `json:"q25"`
	Q75          float64 `json:"q75"`
	Skewness     float64 `json:"skewness"`
	OutlierCount int     `json:"outlier_count"`
	IsNormal     bool    `json:"is_normal"`
	NormalityP   float64 `json:"normality_p"`
}

// AnalyzeShape computes distribution markers for a metric series.
// Fewer than three observations yield zero markers rather than an error.
func AnalyzeShape(data []float64) ShapeMarkers {
	markers := ShapeMarkers{}
	if len(data) < 3 {
		return markers
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return markers
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return markers
	}
	markers.StdDev = stdDev

	if v, err := stats.Min(data); err == nil {
		markers.Min = v
	}
	if v, err := stats.Max(data); err == nil {
		markers.Max = v
	}

	q25, err1 := stats.Percentile(data, 25)
	q75, err2 := stats.Percentile(data, 75)
	if err1 == nil && err2 == nil {
		markers.Q25 = q25
		markers.Q75 = q75
		markers.OutlierCount = countOutliers(data, q25, q75)
	}

	if stdDev > 0 {
		markers.Skewness = sampleSkewness(data, mean, stdDev)
		markers.IsNormal, markers.NormalityP = testNormality(data, mean, stdDev)
	}

	return markers
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes sample kurtosis (not excess)
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 3
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}
	return sumFourth / n
}

// testNormality approximates a normality test from skewness and kurtosis.
// The p-value comes from a chi-squared approximation of the combined
// statistic; it is a screening heuristic, not an inferential test.
func testNormality(data []float64, mean, stdDev float64) (bool, float64) {
	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue := 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// countOutliers identifies outliers using the 1.5*IQR rule
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, x := range data {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
