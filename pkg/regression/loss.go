package regression

import (
	"github.com/liucxer/regression-tools/pkg/dataset"
)

func Predict(intercept float64, slope float64, x float64) float64 {
	return intercept + slope*x
}

// SSE(θ) = Σ (y_i − (intercept + slope*x_i))²
func SSE(ds *dataset.Dataset, intercept float64, slope float64) float64 {
	sum := float64(0)
	for i := 0; i < ds.Len(); i++ {
		residual := ds.Y(i) - Predict(intercept, slope, ds.X(i))
		sum += residual * residual
	}
	return sum
}
